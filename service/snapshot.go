package service

import (
	"context"
	"errors"
	"time"

	"go-sparepart-pqt/models"

	"gorm.io/gorm"
)

type SignalKind string

const (
	SignalItems    SignalKind = "items"
	SignalParts    SignalKind = "parts"
	SignalComplete SignalKind = "complete"
	SignalError    SignalKind = "error"
)

// SnapshotSignal adalah satu pesan dari background load; urutan pengiriman
// selalu items → parts → complete, atau error lalu selesai.
type SnapshotSignal struct {
	Kind  SignalKind
	Items []string
	Parts []PartRow
	Err   error
}

// PartRow adalah satu baris daftar part, diurutkan prioritas risiko.
type PartRow struct {
	ID           uint             `json:"id"`
	SpareName    string           `json:"spare_name"`
	MaterialType string           `json:"material_type"`
	SystemQty    int              `json:"system_qty"`
	PhysicalQty  int              `json:"physical_qty"`
	Variance     int              `json:"variance"`
	RackLocation string           `json:"rack_location"`
	LastCheck    string           `json:"last_check"`
	MinStock     int              `json:"min_stock"`
	PQTStatus    models.PQTStatus `json:"pqt_status"`
}

type ItemDetail struct {
	SpareID       uint   `json:"spare_id"`
	ProductNumber string `json:"product_number"`
	MaterialType  string `json:"material_type"`
	SystemQty     int    `json:"system_qty"`
	PhysicalQty   int    `json:"physical_qty"`
	Variance      int    `json:"variance"`
	RackLocation  string `json:"rack_location"`
	MinStock      int    `json:"min_stock"`
}

type partScan struct {
	ID           uint
	SpareName    string
	MaterialType string
	SystemQty    int
	PhysicalQty  int
	Variance     int
	RackLocation string
	CheckDate    *time.Time
	MinStock     int
	PQTStatus    models.PQTStatus
}

// partsOrder: part habis dulu, lalu variance, lalu stok menipis, sisanya
// belakangan; di dalam tiap kelompok urut nama. Cermin prioritas classifier.
const partsQuery = `
SELECT
    s.id,
    s.spare_name,
    s.material_type,
    s.stock AS system_qty,
    COALESCE(p.physical_qty, s.stock) AS physical_qty,
    COALESCE(p.variance, 0) AS variance,
    s.rack_location,
    p.check_date,
    s.min_stock,
    COALESCE(p.status, 'Pending') AS pqt_status
FROM spareparts s
LEFT JOIN physical_quantity p ON s.id = p.spare_id
ORDER BY
    CASE
        WHEN s.stock = 0 THEN 1
        WHEN COALESCE(p.variance, 0) != 0 THEN 2
        WHEN s.stock <= s.min_stock AND s.stock > 0 THEN 3
        ELSE 4
    END,
    s.spare_name`

// LoadCatalogSnapshot menjalankan pemuatan katalog di goroutine sendiri dan
// mengembalikan channel sinyal. Channel ditutup setelah complete atau error;
// hasilnya snapshot point-in-time, bukan cursor hidup.
func (s *service) LoadCatalogSnapshot(ctx context.Context) <-chan SnapshotSignal {
	out := make(chan SnapshotSignal, 3)
	go func() {
		defer close(out)

		var items []string
		if err := s.db.WithContext(ctx).Model(&models.Sparepart{}).
			Distinct().
			Where("stock > 0").
			Order("spare_name ASC").
			Pluck("spare_name", &items).Error; err != nil {
			out <- SnapshotSignal{Kind: SignalError, Err: &StorageError{Op: "load items", Err: err}}
			return
		}
		out <- SnapshotSignal{Kind: SignalItems, Items: items}

		var rows []partScan
		if err := s.db.WithContext(ctx).Raw(partsQuery).Scan(&rows).Error; err != nil {
			out <- SnapshotSignal{Kind: SignalError, Err: &StorageError{Op: "load parts", Err: err}}
			return
		}
		parts := make([]PartRow, 0, len(rows))
		for _, r := range rows {
			lastCheck := "Never"
			if r.CheckDate != nil {
				lastCheck = r.CheckDate.Format("2006-01-02")
			}
			parts = append(parts, PartRow{
				ID:           r.ID,
				SpareName:    r.SpareName,
				MaterialType: r.MaterialType,
				SystemQty:    r.SystemQty,
				PhysicalQty:  r.PhysicalQty,
				Variance:     r.Variance,
				RackLocation: r.RackLocation,
				LastCheck:    lastCheck,
				MinStock:     r.MinStock,
				PQTStatus:    r.PQTStatus,
			})
		}
		out <- SnapshotSignal{Kind: SignalParts, Parts: parts}

		out <- SnapshotSignal{Kind: SignalComplete}
	}()
	return out
}

// ItemDetail mengambil detail satu item by name (query panel detail).
func (s *service) ItemDetail(ctx context.Context, itemName string) (ItemDetail, error) {
	var d ItemDetail
	err := s.db.WithContext(ctx).Raw(`
		SELECT
		    s.id AS spare_id,
		    s.product_number,
		    s.material_type,
		    s.stock AS system_qty,
		    COALESCE(p.physical_qty, s.stock) AS physical_qty,
		    COALESCE(p.variance, 0) AS variance,
		    s.rack_location,
		    s.min_stock
		FROM spareparts s
		LEFT JOIN physical_quantity p ON s.id = p.spare_id
		WHERE s.spare_name = ?`, itemName).Scan(&d).Error
	if err != nil {
		return ItemDetail{}, &StorageError{Op: "load item detail", Err: err}
	}
	if d.SpareID == 0 {
		return ItemDetail{}, &NotFoundError{Entity: "item", Key: itemName}
	}
	return d, nil
}

// IsNotFound membantu collaborator membedakan not-found dari kegagalan store.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf) || errors.Is(err, gorm.ErrRecordNotFound)
}
