package domain

// Activity is a recurring bookable offering owned by an admin user. The
// activities service is the system of record; the web tier only holds
// transient read/write copies.
type Activity struct {
	ID          int64   `json:"id"`
	OwnerUserID string  `json:"ownerUserId"`
	Categoria   string  `json:"categoria"`
	Nombre      string  `json:"nombre"`
	Ubicacion   string  `json:"ubicacion"`
	Instructor  string  `json:"instructor,omitempty"`
	PrecioBase  float64 `json:"precioBase"`
	Rating      float64 `json:"rating"`
	UpdatedAt   string  `json:"updatedAt"`
}

// Session is one concrete time-boxed occurrence of an Activity with finite
// capacity. Fecha is YYYY-MM-DD; Inicio and Fin are HH:mm wall-clock times.
// Inicio < Fin is checked before submission; the authoritative check is
// server-side.
type Session struct {
	ID         int64  `json:"id"`
	ActivityID int64  `json:"activityId"`
	Fecha      string `json:"fecha"`
	Inicio     string `json:"inicio"`
	Fin        string `json:"fin"`
	Capacidad  int    `json:"capacidad"`
	CreatedAt  string `json:"createdAt"`
	UpdatedAt  string `json:"updatedAt"`
}

// Enrollment lifecycle states. Transitions are server-authoritative; the web
// tier only requests enroll and cancel.
const (
	EnrollmentPendiente  = "pendiente"
	EnrollmentConfirmada = "confirmada"
	EnrollmentCancelada  = "cancelada"
)

// Enrollment is a user's booking of one Session.
type Enrollment struct {
	ID          int64   `json:"id"`
	ActivityID  int64   `json:"activityId"`
	SessionID   int64   `json:"sessionId"`
	UserID      string  `json:"userId"`
	PrecioFinal float64 `json:"precioFinal"`
	Estado      string  `json:"estado"`
	CreatedAt   string  `json:"createdAt"`
}
