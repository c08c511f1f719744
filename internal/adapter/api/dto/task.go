package dto

// TaskItem mirrors the backend's task representation. Field names are the
// backend's Spanish wire names.
type TaskItem struct {
	ID          *int64 `json:"id,omitempty"`
	Titulo      string `json:"titulo"`
	Descripcion string `json:"descripcion"`
	Estado      string `json:"estado"`
	FechaLimite string `json:"fecha_limite"`
	UsuarioID   int64  `json:"usuarioId"`
}
