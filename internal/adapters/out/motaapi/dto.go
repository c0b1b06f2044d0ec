// Package motaapi is the HTTP client for the MOTA backend, the system of
// record for orders. It maps the backend's JSON records to order aggregates
// and backend failures to the errors declared in ports.
package motaapi

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"mota/internal/core/domain/model/kernel"
	"mota/internal/core/domain/model/order"
)

// OrderDTO is a "pedido" as served by the backend.
type OrderDTO struct {
	ID              int64       `json:"id"`
	StatusID        int         `json:"id_estatusp"`
	PaymentStatusID int         `json:"id_estatuspago"`
	PriorityID      int         `json:"id_prioridad"`
	DieID           *int64      `json:"id_dado"`
	DesignerID      *int64      `json:"id_disenador"`
	MillingID       *int64      `json:"id_fresadora"`
	DoctorID        int64       `json:"id_doctor"`
	Address         string      `json:"direccion"`
	Date            BackendTime `json:"fecha"`
}

// StatusUpdateDTO is the body of PUT /pedidos/{id}/estatus.
type StatusUpdateDTO struct {
	StatusID int `json:"id_estatusp"`
}

// ParticipantsUpdateDTO is the body of PUT /pedidos/{id}. Unassigned
// stations are sent as null.
type ParticipantsUpdateDTO struct {
	DieID      *int64 `json:"id_dado"`
	DesignerID *int64 `json:"id_disenador"`
	MillingID  *int64 `json:"id_fresadora"`
}

// BackendTime accepts the timestamp layouts the backend is known to emit.
type BackendTime struct {
	time.Time
}

var backendTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.DateOnly,
}

func (t *BackendTime) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		t.Time = time.Time{}
		return nil
	}
	for _, layout := range backendTimeLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("unsupported date %q", raw)
}

func (t BackendTime) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`""`), nil
	}
	return json.Marshal(t.Time.Format(time.RFC3339))
}

// toDomain rebuilds the aggregate from a backend record.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	die, err := optionalID(dto.DieID)
	if err != nil {
		return nil, err
	}
	designer, err := optionalID(dto.DesignerID)
	if err != nil {
		return nil, err
	}
	milling, err := optionalID(dto.MillingID)
	if err != nil {
		return nil, err
	}

	client, err := kernel.NewID(dto.DoctorID)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(order.Snapshot{
		ID:              id,
		Status:          order.Status(dto.StatusID),
		PaymentStatus:   dto.PaymentStatusID,
		Priority:        order.Priority(dto.PriorityID),
		Participants:    order.NewParticipants(die, designer, milling),
		ClientID:        client,
		DeliveryAddress: dto.Address,
		CreatedAt:       dto.Date.Time,
	})
}

func participantsToDTO(p order.Participants) ParticipantsUpdateDTO {
	return ParticipantsUpdateDTO{
		DieID:      rawID(p.Get(order.SlotDie)),
		DesignerID: rawID(p.Get(order.SlotDesigner)),
		MillingID:  rawID(p.Get(order.SlotMilling)),
	}
}

// optionalID treats null and 0 as unassigned.
func optionalID(v *int64) (*kernel.ID, error) {
	if v == nil || *v == 0 {
		return nil, nil
	}
	id, err := kernel.NewID(*v)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func rawID(id *kernel.ID) *int64 {
	if id == nil {
		return nil
	}
	v := id.Int64()
	return &v
}
