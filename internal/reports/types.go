package reports

type DayEntry struct {
	Tarih       string `json:"tarih"`
	Gun         string `json:"gun"`
	Tamamlanan  int    `json:"tamamlanan"`
	NotSayisi   int    `json:"not_sayisi"`
	BasariOrani int    `json:"basari_orani"`
}

type WeeklyReport struct {
	HaftaOzeti         []DayEntry `json:"hafta_ozeti"`
	OrtalamaBasari     float64    `json:"ortalama_basari"`
	AktifGunSayisi     int        `json:"aktif_gun_sayisi"`
	SekreterYorumu     string     `json:"sekreter_yorumu"`
	HaftaSonuBildirimi bool       `json:"hafta_sonu_bildirimi"`
	BildirimMesaji     *string    `json:"bildirim_mesaji"`
}

type MonthlyReport struct {
	Ay                    string  `json:"ay"`
	AktifGun              int     `json:"aktif_gun"`
	ToplamTamamlananGorev int     `json:"toplam_tamamlanan_gorev"`
	ToplamNot             int     `json:"toplam_not"`
	OrtalamaBasari        float64 `json:"ortalama_basari"`
	SekreterYorumu        string  `json:"sekreter_yorumu"`
	AySonuBildirimi       bool    `json:"ay_sonu_bildirimi"`
	BildirimMesaji        *string `json:"bildirim_mesaji"`
}

type Notification struct {
	Tip    string `json:"tip"`
	Baslik string `json:"baslik"`
	Mesaj  string `json:"mesaj"`
	Detay  string `json:"detay"`
}

type Notifications struct {
	BildirimVar bool           `json:"bildirim_var"`
	Bildirimler []Notification `json:"bildirimler"`
}

// Suggestion keeps the client's historical "onerı" key, dotless ı included.
type Suggestion struct {
	BasariOrani string `json:"basari_orani"`
	Oneri       string `json:"onerı"`
}

type Summary struct {
	Hedef       string `json:"hedef"`
	ToplamGorev int    `json:"toplam_gorev"`
	Tamamlanan  int    `json:"tamamlanan"`
	BasariOrani string `json:"basari_orani"`
	Yorum       string `json:"yorum"`
}
