package tag

// Tag is a free-standing label with its own CRUD surface.
type Tag struct {
	ID   int64  `json:"tagId"`
	Name string `json:"name"`
}
