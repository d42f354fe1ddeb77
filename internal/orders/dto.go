package orders

import (
	"time"

	"github.com/RitikRK96/esnan-digital/pkg/db/models"
	"github.com/RitikRK96/esnan-digital/pkg/enums"
	"github.com/google/uuid"
)

// ItemDTO is one frozen order line.
type ItemDTO struct {
	ProductID       uuid.UUID             `json:"product_id"`
	Name            string                `json:"name"`
	PriceRupees     int                   `json:"price_rupees"`
	Quantity        int                   `json:"quantity"`
	ImageURL        string                `json:"image_url"`
	Category        enums.ProductCategory `json:"category"`
	LineTotalRupees int                   `json:"line_total_rupees"`
}

// OrderDTO is an order as served to clients. Orders never change after
// checkout except for their status.
type OrderDTO struct {
	ID          uuid.UUID         `json:"id"`
	Status      enums.OrderStatus `json:"status"`
	TotalRupees int               `json:"total_rupees"`
	Items       []ItemDTO         `json:"items"`
	CreatedAt   time.Time         `json:"created_at"`
}

// PageDTO is one cursor page of the user's order history, newest first.
type PageDTO struct {
	Orders     []OrderDTO `json:"orders"`
	NextCursor string     `json:"next_cursor,omitempty"`
}

// FromModel converts a persisted order into its API shape.
func FromModel(order models.Order) OrderDTO {
	dto := OrderDTO{
		ID:          order.ID,
		Status:      order.Status,
		TotalRupees: order.TotalRupees,
		Items:       make([]ItemDTO, 0, len(order.Items)),
		CreatedAt:   order.CreatedAt,
	}
	for _, item := range order.Items {
		dto.Items = append(dto.Items, ItemDTO{
			ProductID:       item.ProductID,
			Name:            item.Name,
			PriceRupees:     item.PriceRupees,
			Quantity:        item.Quantity,
			ImageURL:        item.ImageURL,
			Category:        item.Category,
			LineTotalRupees: item.LineTotalRupees,
		})
	}
	return dto
}
