// Package datasettest provides a small Quran dataset for tests.
package datasettest

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"quranku_backend/internals/features/quran/surahs/dataset"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const Maududi = "Abul Ala Maududi"

// Header matches the column layout of quran_data.xlsx, with one extra
// translator column.
func Header() []string {
	return []string{
		"SuraID", "AyaNo", "RukuNo", "Arabic Text",
		"Fateh Muhammad Jalandhri", "Saheeh International", Maududi,
		"SurahNameU", "SurahNameMeaning", "Makki", "TartibiNumber", "NuzuliNumber",
	}
}

// Rows holds Al-Fatiha (7 ayahs), An-Nasr (3 ayahs, Madani) and An-Nas
// (6 ayahs, listed out of order, ayah 3 without an English translation).
func Rows() [][]string {
	return [][]string{
		{"1", "1", "1", "بِسْمِ اللَّهِ الرَّحْمَٰنِ الرَّحِيمِ", "شروع الله کا نام لے کر جو بڑا مہربان نہایت رحم والا ہے", "In the name of Allah, the Entirely Merciful, the Especially Merciful.", "In the name of Allah, the Merciful, the Compassionate.", "الفاتحة", "The Opening", "1", "1", "5"},
		{"1", "2", "1", "الْحَمْدُ لِلَّهِ رَبِّ الْعَالَمِينَ", "سب طرح کی تعریف خدا ہی کو سزاوار ہے", "[All] praise is [due] to Allah, Lord of the worlds -", "Praise is only for Allah, the Lord of the Universe.", "الفاتحة", "The Opening", "1", "1", "5"},
		{"1", "3", "1", "الرَّحْمَٰنِ الرَّحِيمِ", "بڑا مہربان نہایت رحم والا", "The Entirely Merciful, the Especially Merciful,", "The Most Merciful, the All-Compassionate.", "الفاتحة", "The Opening", "1", "1", "5"},
		{"1", "4", "1", "مَالِكِ يَوْمِ الدِّينِ", "انصاف کے دن کا حاکم", "Sovereign of the Day of Recompense.", "The Master of the Day of Recompense.", "الفاتحة", "The Opening", "1", "1", "5"},
		{"1", "5", "1", "إِيَّاكَ نَعْبُدُ وَإِيَّاكَ نَسْتَعِينُ", "ہم تیری ہی عبادت کرتے ہیں اور تجھ ہی سے مدد مانگتے ہیں", "It is You we worship and You we ask for help.", "You alone do we worship, and You alone do we turn to for help.", "الفاتحة", "The Opening", "1", "1", "5"},
		{"1", "6", "1", "اهْدِنَا الصِّرَاطَ الْمُسْتَقِيمَ", "ہم کو سیدھے رستے چلا", "Guide us to the straight path -", "Direct us on to the Straight Way,", "الفاتحة", "The Opening", "1", "1", "5"},
		{"1", "7", "1", "صِرَاطَ الَّذِينَ أَنْعَمْتَ عَلَيْهِمْ غَيْرِ الْمَغْضُوبِ عَلَيْهِمْ وَلَا الضَّالِّينَ", "ان لوگوں کے رستے جن پر تو اپنا فضل وکرم کرتا رہا", "The path of those upon whom You have bestowed favor, not of those who have evoked [Your] anger or of those who are astray.", "the way of those whom You have favoured, who did not incur Your wrath, who are not astray.", "الفاتحة", "The Opening", "1", "1", "5"},

		{"110", "1", "1", "إِذَا جَاءَ نَصْرُ اللَّهِ وَالْفَتْحُ", "جب خدا کی مدد آ پہنچی اور فتح حاصل ہو گئی", "When the victory of Allah has come and the conquest,", "When the help of Allah comes, and victory,", "النصر", "The Divine Support", "0", "110", "114"},
		{"110", "2", "1", "وَرَأَيْتَ النَّاسَ يَدْخُلُونَ فِي دِينِ اللَّهِ أَفْوَاجًا", "اور تم نے دیکھ لیا کہ لوگ غول کے غول خدا کے دین میں داخل ہو رہے ہیں", "And you see the people entering into the religion of Allah in multitudes,", "and you see people entering the religion of Allah in multitudes,", "النصر", "The Divine Support", "0", "110", "114"},
		{"110", "3", "1", "فَسَبِّحْ بِحَمْدِ رَبِّكَ وَاسْتَغْفِرْهُ إِنَّهُ كَانَ تَوَّابًا", "تو اپنے پروردگار کی تعریف کے ساتھ تسبیح کرو", "Then exalt [Him] with praise of your Lord and ask forgiveness of Him. Indeed, He is ever Accepting of repentance.", "then glorify your Lord with His praise, and seek His forgiveness.", "النصر", "The Divine Support", "0", "110", "114"},

		{"114", "6", "1", "مِنَ الْجِنَّةِ وَالنَّاسِ", "جو جنات میں سے ہو یا انسانوں میں سے", "From among the jinn and mankind.", "whether he be from the jinn or men.", "الناس", "Mankind", "1", "114", "21"},
		{"114", "2", "1", "مَلِكِ النَّاسِ", "لوگوں کے حقیقی بادشاہ کی", "The Sovereign of mankind.", "the King of mankind,", "الناس", "Mankind", "1", "114", "21"},
		{"114", "1", "1", "قُلْ أَعُوذُ بِرَبِّ النَّاسِ", "کہو کہ میں لوگوں کے پروردگار کی پناہ مانگتا ہوں", "Say, \"I seek refuge in the Lord of mankind,", "Say: \"I seek refuge with the Lord of mankind,", "الناس", "Mankind", "1", "114", "21"},
		{"114", "4", "1", "مِنْ شَرِّ الْوَسْوَاسِ الْخَنَّاسِ", "شیطان وسوسہ انداز کی برائی سے", "From the evil of the retreating whisperer -", "from the evil of the whisperer who withdraws", "الناس", "Mankind", "1", "114", "21"},
		{"114", "3", "1", "إِلَٰهِ النَّاسِ", "لوگوں کے معبود برحق کی", "", "the God of mankind,", "الناس", "Mankind", "1", "114", "21"},
		{"114", "5", "1", "الَّذِي يُوَسْوِسُ فِي صُدُورِ النَّاسِ", "جو لوگوں کے دلوں میں وسوسے ڈالتا ہے", "Who whispers [evil] into the breasts of mankind -", "who whispers into the hearts of men,", "الناس", "Mankind", "1", "114", "21"},
	}
}

// Table parses Header and Rows.
func Table(t testing.TB) dataset.Table {
	t.Helper()
	tbl, err := dataset.ParseRows(Header(), Rows())
	require.NoError(t, err)
	return tbl
}

// Store builds a Store over the fixture rows.
func Store(t testing.TB) *dataset.Store {
	t.Helper()
	s, err := dataset.NewStore(Table(t))
	require.NoError(t, err)
	return s
}

// WriteXLSX writes header and rows into a new workbook under t.TempDir and
// returns its path.
func WriteXLSX(t testing.TB, header []string, rows [][]string) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	all := append([][]string{header}, rows...)
	for i, r := range all {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		vals := make([]interface{}, len(r))
		for j, v := range r {
			vals[j] = v
		}
		require.NoError(t, f.SetSheetRow(sheet, cell, &vals))
	}

	path := filepath.Join(t.TempDir(), "quran_data.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

// WriteCSV writes header and rows as CSV under t.TempDir and returns its path.
func WriteCSV(t testing.TB, header []string, rows [][]string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "quran_data.csv")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	w := csv.NewWriter(f)
	require.NoError(t, w.Write(header))
	require.NoError(t, w.WriteAll(rows))
	return path
}
