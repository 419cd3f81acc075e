package dto

type ActionRequest struct {
	Action     string            `json:"action" binding:"required"`
	Parameters map[string]string `json:"parameters"`
}

type ActionDefinition struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Parameters  any    `json:"parameters"`
}
