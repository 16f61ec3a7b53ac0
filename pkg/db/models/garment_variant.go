package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	dbtypes "github.com/rkhatri/vastra-backend/pkg/db/types"
	"github.com/rkhatri/vastra-backend/pkg/enums"
)

// GarmentVariant is the single-table rendition of the six garment shapes.
// The kind tag selects which keys the attributes bag is expected to carry.
// parent_product_id and wholesaler_id are plain references: deleting the
// target does not cascade here, and expansion renders a missing target as null.
type GarmentVariant struct {
	ID              uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Kind            enums.VariantKind `gorm:"column:kind;not null;index"`
	ParentProductID *uuid.UUID      `gorm:"column:parent_product_id;type:uuid;index"`
	WholesalerID    uuid.UUID       `gorm:"column:wholesaler_id;type:uuid;not null;index"`
	Name            string          `gorm:"column:name;not null"`
	Fabric          string          `gorm:"column:fabric"`
	Work            string          `gorm:"column:work"`
	Sizes           pq.StringArray  `gorm:"column:sizes;type:text[];not null;default:ARRAY[]::text[]"`
	Manufacturer    string          `gorm:"column:manufacturer"`
	Quantity        int             `gorm:"column:quantity;not null;default:0"`
	PurchasePrice   *float64        `gorm:"column:purchase_price;type:numeric(12,2)"`
	Attributes      dbtypes.JSONMap `gorm:"column:attributes;type:jsonb;not null;default:'{}'"`
	Wholesaler      *Wholesaler     `gorm:"foreignKey:WholesalerID;references:ID;constraint:-"`
	CreatedAt       time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}
