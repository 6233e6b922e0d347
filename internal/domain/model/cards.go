package model

// KPICard is a title and a single display value.
type KPICard struct {
	Title string `json:"title"`
	Value string `json:"value"`
}

// PlayerCard is the renderer-facing view of a PlayerRecord with defaults
// already resolved.
type PlayerCard struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Age         int    `json:"age"`
	Position    string `json:"position"`
	Club        string `json:"club"`
	Nationality string `json:"nationality"`
	PhotoURL    string `json:"photo_url"`
}
