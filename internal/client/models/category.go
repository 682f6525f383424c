package models

type CategoryList struct {
	Names []string `json:"names"`
}

type CategoryRequest struct {
	Name string `json:"name"`
}

type CategoryRename struct {
	Name    string `json:"name"`
	NewName string `json:"new_name"`
}
