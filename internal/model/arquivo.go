package model

import "time"

// Lifecycle states of an arquivo. Estado 0 doubles as the "unpaused" value:
// the pause toggle flips 0 <-> 3 and never writes 2.
const (
	EstadoPendente  = 0
	EstadoReprovado = 1
	EstadoAprovado  = 2
	EstadoPausado   = 3
)

// Arquivo represents an uploaded file's metadata. The bytes themselves live
// in the object store under Path; this record only describes them.
// Tamanho is stored as a string (legacy wire format, "0" for placeholder
// records created when an upload carries no file).
type Arquivo struct {
	ID        string    `json:"id"`
	Nome      string    `json:"nome"`
	Path      string    `json:"path"`
	Filename  string    `json:"filename"`
	UserID    string    `json:"userId"`
	Tipo      string    `json:"tipo"`
	Tamanho   string    `json:"tamanho"`
	Estado    int       `json:"estado"`
	Preco     float64   `json:"preco"`
	CreatedAt time.Time `json:"createdAt"`
}
