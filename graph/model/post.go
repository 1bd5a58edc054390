package model

// Post is the request-scoped copy of a stored post handed out by storages.
type Post struct {
	ID      int    `json:"id"`
	Post    string `json:"post"`
	Content string `json:"content"`
}
