package goals

type CreateRequest struct {
	Goal         string `json:"goal"`
	DurationDays int    `json:"duration_days"`
}

type CreateResponse struct {
	Mesaj    string   `json:"mesaj"`
	Gorevler []string `json:"gorevler"`
}

type Analysis struct {
	Hedef           string `json:"hedef"`
	TamamlananGorev int    `json:"tamamlanan_gorev"`
	NotSayisi       int    `json:"not_sayisi"`
	BasariOrani     string `json:"basari_orani"`
	Durum           string `json:"durum"`
	Tavsiye         string `json:"tavsiye"`
}

// noProjectAnalysis is shown before any project exists.
var noProjectAnalysis = Analysis{
	Hedef:       "Henüz proje yok",
	BasariOrani: "%0",
	Durum:       "Başlamadı",
	Tavsiye:     "Sağ üstten 'Yeni Proje'ye tıkla ya da Asistan sekmesinde ne yapmak istediğini söyle! 🚀",
}
