package request

// SearchFilter asks for rows whose column behind Key contains Value,
// ignoring case.
type SearchFilter struct {
	Key   string `json:"key" form:"key"`
	Value string `json:"value" form:"value"`
}
