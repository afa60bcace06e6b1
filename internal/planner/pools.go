package planner

import (
	"slices"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

type Bucket string

const (
	Mobile   Bucket = "mobile"
	Learning Bucket = "learning"
	Backend  Bucket = "backend"
	Generic  Bucket = "generic"
)

// Buckets are matched in this order; the first keyword hit wins. Learning
// comes before backend so "learn python" is a study plan. Keywords match
// anywhere in the goal, words only as a whole word.
var buckets = []struct {
	name     Bucket
	keywords []string
	words    []string
}{
	{Mobile, []string{"flutter", "dart", "mobil", "android"}, []string{"ios"}},
	{Learning, []string{"öğren", "kurs", "çalış", "oku", "learn", "study", "course"}, []string{"read"}},
	{Backend, []string{"python", "fastapi", "backend", "django"}, nil},
}

var pools = map[Bucket][]string{
	Mobile: {
		"Proje klasör yapısını düzenle",
		"Ana ekran UI tasarımını tamamla",
		"Veri modellerini oluştur",
		"API bağlantısını kur",
		"State management ekle",
		"Kullanıcı giriş ekranını yap",
		"Navigasyon sistemini kur",
		"Hata yakalama ekle",
		"Tüm ekranları test et",
		"Release build al",
	},
	Backend: {
		"Gereksinimleri belirle",
		"Klasör yapısını oluştur",
		"Veritabanı modellerini tasarla",
		"API endpoint'lerini yaz",
		"Kimlik doğrulamayı ekle",
		"Unit testleri yaz",
		"Dokümantasyonu hazırla",
		"Deploy et",
	},
	Learning: {
		"Kaynakları listele ve seç",
		"İlk konuyu çalış",
		"Not al ve özetle",
		"Pratik alıştırma yap",
		"İkinci konuya geç",
		"Tekrar ve pekiştirme",
		"Mini proje yap",
		"Genel değerlendirme",
	},
	Generic: {
		"Araştır ve planla",
		"İlk adımı at",
		"İlerlemeyi kaydet",
		"Geri bildirim al",
		"Düzelt ve geliştir",
		"Test et",
		"Tamamla",
		"Değerlendir",
	},
}

// Classify picks the fallback bucket for a goal. The goal is lower-cased
// twice: Turkish rules fold "İ" to "i", root rules fold an English "I" to
// "i" rather than "ı".
func Classify(goal string) Bucket {
	g := norm.NFC.String(goal)
	// Casers keep state, so each call gets its own.
	forms := []string{
		cases.Lower(language.Turkish).String(g),
		cases.Lower(language.Und).String(g),
	}
	for _, b := range buckets {
		for _, form := range forms {
			if matches(form, b.keywords, b.words) {
				return b.name
			}
		}
	}
	return Generic
}

func matches(goal string, keywords, words []string) bool {
	for _, k := range keywords {
		if strings.Contains(goal, k) {
			return true
		}
	}
	if len(words) == 0 {
		return false
	}
	for _, w := range strings.FieldsFunc(goal, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) {
		if slices.Contains(words, w) {
			return true
		}
	}
	return false
}

// Pool returns a copy of the bucket's task pool.
func Pool(b Bucket) []string {
	return append([]string(nil), pools[b]...)
}
