package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	dbtypes "github.com/rkhatri/vastra-backend/pkg/db/types"
)

// Product is the parent catalog entity. Garment variants reference it through
// parent_product_id; the reverse link is never required.
type Product struct {
	ID         uuid.UUID         `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name       string            `gorm:"column:name;not null"`
	Slug       string            `gorm:"column:slug;not null;uniqueIndex"`
	Price      float64           `gorm:"column:price;type:numeric(10,2);not null"`
	OldPrice   *float64          `gorm:"column:old_price;type:numeric(10,2)"`
	Discount   *float64          `gorm:"column:discount;type:numeric(5,2)"`
	Images     pq.StringArray    `gorm:"column:images;type:text[];not null;default:ARRAY[]::text[]"`
	CategoryID *uuid.UUID        `gorm:"column:category_id;type:uuid"`
	RelatedIDs dbtypes.UUIDArray `gorm:"column:related_ids;type:uuid[];not null;default:ARRAY[]::uuid[]"`
	IsActive   bool              `gorm:"column:is_active;not null;default:true"`
	CreatedAt  time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time         `gorm:"column:updated_at;autoUpdateTime"`
}
