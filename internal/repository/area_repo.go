package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"agrofield/internal/dto"
	"agrofield/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CreateAreaInput is the validated payload the service hands to Create.
// Polygon is GeoJSON text already accepted by the polygon validator.
type CreateAreaInput struct {
	Name             string
	Polygon          json.RawMessage
	Color            *string
	AreaM2           decimal.Decimal
	ProducerID       uint
	SoilTypeID       uint
	IrrigationTypeID uint
}

// AreaRecord is the joined, geometry-decoded row shape handed to services:
// soil/irrigation names inlined, polygon converted back from the native
// geometry column, SizeM2 the geodesic ST_Area of the stored polygon.
type AreaRecord struct {
	ID                 uint
	Name               string
	Polygon            *dto.GeoJSONPolygon
	Color              *string
	Active             bool
	AreaM2             decimal.Decimal
	SizeM2             float64
	ProducerID         uint
	SoilTypeID         uint
	SoilTypeName       string
	IrrigationTypeID   uint
	IrrigationTypeName string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// AreaRepository defines the data access contract for areas. Services depend
// on this interface, not on the concrete GORM implementation, enabling clean
// unit testing via stubs.
type AreaRepository interface {
	Create(ctx context.Context, in CreateAreaInput) (*AreaRecord, error)
	// FindByID returns (nil, nil) when no row matches — absence is not an error.
	FindByID(ctx context.Context, id uint) (*AreaRecord, error)
	FindByProducerID(ctx context.Context, producerID uint) ([]AreaRecord, error)
	FindAll(ctx context.Context) ([]AreaRecord, error)
	UpdateStatus(ctx context.Context, id uint, active bool) (*AreaRecord, error)
	// Update applies exactly the keys present in fields. Explicit zero/false
	// values are applied; absent keys are left untouched.
	Update(ctx context.Context, id uint, fields map[string]interface{}) (*AreaRecord, error)
	ExistsBySoilTypeID(ctx context.Context, soilTypeID uint) (bool, error)
	ExistsByIrrigationTypeID(ctx context.Context, irrigationTypeID uint) (bool, error)
}

type areaRepo struct{ db *gorm.DB }

func NewAreaRepository(db *gorm.DB) AreaRepository { return &areaRepo{db: db} }

// areaSelect is the single joined/decoded read shape every area query uses.
// ST_AsGeoJSON round-trips the geometry column; ST_Area over the geography
// cast yields true geodesic square meters.
const areaSelect = `
SELECT a.id, a.name,
       ST_AsGeoJSON(a.polygon)                      AS polygon_geojson,
       a.color, a.active, a.area_m2,
       a.producer_id, a.soil_type_id, a.irrigation_type_id,
       a.created_at, a.updated_at,
       s.name                                       AS soil_type_name,
       i.name                                       AS irrigation_type_name,
       COALESCE(ST_Area(a.polygon::geography), 0)   AS size_m2
  FROM areas a
  JOIN soil_types s       ON s.id = a.soil_type_id
  JOIN irrigation_types i ON i.id = a.irrigation_type_id`

// areaRow is the scan target for areaSelect. One typed contract for every
// read path; a NULL polygon column maps to a nil Polygon on the record.
type areaRow struct {
	ID                 uint
	Name               string
	PolygonGeoJSON     *string `gorm:"column:polygon_geojson"`
	Color              *string
	Active             bool
	AreaM2             decimal.Decimal `gorm:"column:area_m2"`
	ProducerID         uint
	SoilTypeID         uint
	IrrigationTypeID   uint
	CreatedAt          time.Time
	UpdatedAt          time.Time
	SoilTypeName       string
	IrrigationTypeName string
	SizeM2             float64 `gorm:"column:size_m2"`
}

func (row areaRow) toRecord() (*AreaRecord, error) {
	rec := &AreaRecord{
		ID:                 row.ID,
		Name:               row.Name,
		Color:              row.Color,
		Active:             row.Active,
		AreaM2:             row.AreaM2,
		SizeM2:             row.SizeM2,
		ProducerID:         row.ProducerID,
		SoilTypeID:         row.SoilTypeID,
		SoilTypeName:       row.SoilTypeName,
		IrrigationTypeID:   row.IrrigationTypeID,
		IrrigationTypeName: row.IrrigationTypeName,
		CreatedAt:          row.CreatedAt,
		UpdatedAt:          row.UpdatedAt,
	}
	if row.PolygonGeoJSON != nil {
		var poly dto.GeoJSONPolygon
		if err := json.Unmarshal([]byte(*row.PolygonGeoJSON), &poly); err != nil {
			return nil, fmt.Errorf("decode polygon of area %d: %w", row.ID, err)
		}
		rec.Polygon = &poly
	}
	return rec, nil
}

func (r *areaRepo) Create(ctx context.Context, in CreateAreaInput) (*AreaRecord, error) {
	var inserted struct{ ID uint }
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO areas (name, polygon, color, active, area_m2,
		                   producer_id, soil_type_id, irrigation_type_id,
		                   created_at, updated_at)
		VALUES (?, ST_GeomFromGeoJSON(?), ?, true, ?, ?, ?, ?, NOW(), NOW())
		RETURNING id`,
		in.Name, string(in.Polygon), in.Color, in.AreaM2,
		in.ProducerID, in.SoilTypeID, in.IrrigationTypeID,
	).Scan(&inserted).Error
	if err != nil {
		return nil, err
	}

	rec, err := r.FindByID(ctx, inserted.ID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return rec, nil
}

func (r *areaRepo) FindByID(ctx context.Context, id uint) (*AreaRecord, error) {
	var rows []areaRow
	err := r.db.WithContext(ctx).Raw(areaSelect+` WHERE a.id = ?`, id).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0].toRecord()
}

func (r *areaRepo) FindByProducerID(ctx context.Context, producerID uint) ([]AreaRecord, error) {
	var rows []areaRow
	err := r.db.WithContext(ctx).Raw(
		areaSelect+` WHERE a.producer_id = ? AND a.active = true ORDER BY a.created_at DESC`,
		producerID,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return toRecords(rows)
}

func (r *areaRepo) FindAll(ctx context.Context) ([]AreaRecord, error) {
	var rows []areaRow
	err := r.db.WithContext(ctx).Raw(
		areaSelect + ` WHERE a.active = true ORDER BY a.created_at DESC`,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return toRecords(rows)
}

func toRecords(rows []areaRow) ([]AreaRecord, error) {
	records := make([]AreaRecord, 0, len(rows))
	for _, row := range rows {
		rec, err := row.toRecord()
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}
	return records, nil
}

// UpdateStatus re-reads via FindByID so the caller always gets the joined,
// derived shape — not the raw UPDATE result.
func (r *areaRepo) UpdateStatus(ctx context.Context, id uint, active bool) (*AreaRecord, error) {
	err := r.db.WithContext(ctx).Exec(
		`UPDATE areas SET active = ?, updated_at = NOW() WHERE id = ?`, active, id,
	).Error
	if err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

func (r *areaRepo) Update(ctx context.Context, id uint, fields map[string]interface{}) (*AreaRecord, error) {
	if len(fields) > 0 {
		fields["updated_at"] = time.Now()
		err := r.db.WithContext(ctx).Model(&model.Area{}).Where("id = ?", id).Updates(fields).Error
		if err != nil {
			return nil, err
		}
	}
	return r.FindByID(ctx, id)
}

func (r *areaRepo) ExistsBySoilTypeID(ctx context.Context, soilTypeID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Area{}).Where("soil_type_id = ?", soilTypeID).Count(&count).Error
	return count > 0, err
}

func (r *areaRepo) ExistsByIrrigationTypeID(ctx context.Context, irrigationTypeID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Area{}).Where("irrigation_type_id = ?", irrigationTypeID).Count(&count).Error
	return count > 0, err
}
