package http

import (
	"time"

	"mota/internal/core/application/usecases/commands"
	"mota/internal/core/application/usecases/queries"
	"mota/internal/core/domain/model/kernel"
	"mota/internal/core/domain/model/order"
	"mota/internal/core/domain/services"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type Status struct {
	Code  int    `json:"code"`
	Label string `json:"label"`
}

type Participants struct {
	Dado      *int64 `json:"dado"`
	Disenador *int64 `json:"disenador"`
	Fresadora *int64 `json:"fresadora"`
}

type Order struct {
	ID              int64        `json:"id"`
	Status          Status       `json:"status"`
	PaymentStatus   int          `json:"payment_status"`
	Priority        int          `json:"priority"`
	Participants    Participants `json:"participants"`
	ClientID        int64        `json:"client_id"`
	DeliveryAddress string       `json:"delivery_address"`
	Fulfillment     string       `json:"fulfillment"`
	CreatedAt       time.Time    `json:"created_at"`
}

type Permissions struct {
	CanAdvance     bool    `json:"can_advance"`
	CanReportError bool    `json:"can_report_error"`
	CanPause       bool    `json:"can_pause"`
	CanConfirm     bool    `json:"can_confirm"`
	CanAssign      bool    `json:"can_assign"`
	NextStatus     *Status `json:"next_status,omitempty"`
}

type OrderDetails struct {
	Order       Order       `json:"order"`
	Permissions Permissions `json:"permissions"`
}

type TimelineEntry struct {
	Stage     string    `json:"stage"`
	Completed bool      `json:"completed"`
	Date      time.Time `json:"date"`
}

type Timeline struct {
	OrderID int64           `json:"order_id"`
	Status  Status          `json:"status"`
	Entries []TimelineEntry `json:"entries"`
}

type Transition struct {
	Order Order  `json:"order"`
	From  Status `json:"from"`
	To    Status `json:"to"`
}

type BoardColumn struct {
	Status Status `json:"status"`
	Count  int    `json:"count"`
}

type Board struct {
	Columns     []BoardColumn `json:"columns"`
	Total       int           `json:"total"`
	RefreshedAt time.Time     `json:"refreshed_at"`
}

type AssignParticipantRequest struct {
	Slot   string `json:"slot"`
	UserID int64  `json:"user_id"`
}

func toStatus(s order.Status) Status {
	return Status{Code: s.Code(), Label: s.String()}
}

func toOrder(o *order.Order) Order {
	p := o.Participants()
	return Order{
		ID:            o.ID().Int64(),
		Status:        toStatus(o.Status()),
		PaymentStatus: o.PaymentStatus(),
		Priority:      int(o.Priority()),
		Participants: Participants{
			Dado:      rawID(p.Get(order.SlotDie)),
			Disenador: rawID(p.Get(order.SlotDesigner)),
			Fresadora: rawID(p.Get(order.SlotMilling)),
		},
		ClientID:        o.ClientID().Int64(),
		DeliveryAddress: o.DeliveryAddress(),
		Fulfillment:     o.Fulfillment().String(),
		CreatedAt:       o.CreatedAt(),
	}
}

func toOrders(orders []*order.Order) []Order {
	out := make([]Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrder(o))
	}
	return out
}

func toPermissions(d services.Decision) Permissions {
	p := Permissions{
		CanAdvance:     d.CanAdvance,
		CanReportError: d.CanReportError,
		CanPause:       d.CanPause,
		CanConfirm:     d.CanConfirm,
		CanAssign:      d.CanAssign,
	}
	if d.CanAdvance {
		next := toStatus(d.NextStatus)
		p.NextStatus = &next
	}
	return p
}

func toTimeline(resp queries.GetOrderTimelineQueryResponse) Timeline {
	entries := make([]TimelineEntry, 0, len(resp.Entries))
	for _, e := range resp.Entries {
		entries = append(entries, TimelineEntry{Stage: string(e.Stage), Completed: e.Completed, Date: e.Date})
	}
	return Timeline{
		OrderID: resp.OrderID.Int64(),
		Status:  toStatus(resp.Status),
		Entries: entries,
	}
}

func toTransition(r commands.TransitionResult) Transition {
	return Transition{Order: toOrder(r.Order), From: toStatus(r.From), To: toStatus(r.To)}
}

func toBoard(resp queries.GetPipelineBoardQueryResponse) Board {
	columns := make([]BoardColumn, 0, len(resp.Columns))
	for _, c := range resp.Columns {
		columns = append(columns, BoardColumn{Status: toStatus(c.Status), Count: c.Count})
	}
	return Board{Columns: columns, Total: resp.Total, RefreshedAt: resp.RefreshedAt}
}

func rawID(id *kernel.ID) *int64 {
	if id == nil {
		return nil
	}
	v := id.Int64()
	return &v
}
