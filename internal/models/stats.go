package models

// Stats alimente les compteurs du tableau de bord admin (GET /admin/stats).
type Stats struct {
	Users         int64 `json:"users"`
	Products      int64 `json:"products"`
	OrdersPending int64 `json:"ordersPending"`
	TicketsOpen   int64 `json:"ticketsOpen"`
}
