package tasks

type CompleteRequest struct {
	TaskIndex int `json:"task_index"`
}

type CompleteResponse struct {
	Mesaj       string `json:"mesaj"`
	BasariOrani int    `json:"basari_orani"`
	Yorum       string `json:"yorum"`
}

type ProgressRequest struct {
	Text string `json:"text"`
}

type ProgressResponse struct {
	Mesaj string `json:"mesaj"`
	Yorum string `json:"yorum"`
}

type message struct {
	Mesaj string `json:"mesaj"`
}

type ListResponse struct {
	Hedef          string   `json:"hedef"`
	Tasks          []string `json:"tasks"`
	Completed      []string `json:"completed"`
	Toplam         *int     `json:"toplam,omitempty"`
	TamamlananSayi *int     `json:"tamamlanan_sayi,omitempty"`
}
