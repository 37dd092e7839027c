package service_test

import (
	"context"
	"testing"
	"time"

	"agrofield/internal/dto"
	"agrofield/internal/model"
	"agrofield/internal/repository"
	"agrofield/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ── Stubs ─────────────────────────────────────────────────────────────────────

// stubAreaRepo is an in-memory AreaRepository for testing. calls records every
// mutating and lookup invocation so tests can assert on ordering and absence.
type stubAreaRepo struct {
	records map[uint]*repository.AreaRecord
	nextID  uint
	calls   *[]string

	// last fields map passed to Update
	updatedFields map[string]interface{}
}

func newStubAreaRepo(calls *[]string) *stubAreaRepo {
	return &stubAreaRepo{records: make(map[uint]*repository.AreaRecord), calls: calls}
}

func (r *stubAreaRepo) log(s string) {
	if r.calls != nil {
		*r.calls = append(*r.calls, s)
	}
}

func (r *stubAreaRepo) Create(_ context.Context, in repository.CreateAreaInput) (*repository.AreaRecord, error) {
	r.log("area.create")
	r.nextID++
	rec := &repository.AreaRecord{
		ID:         r.nextID,
		Name:       in.Name,
		Color:      in.Color,
		Active:     true,
		AreaM2:     in.AreaM2,
		ProducerID: in.ProducerID,
		SoilTypeID: in.SoilTypeID, IrrigationTypeID: in.IrrigationTypeID,
		CreatedAt: time.Now(), UpdatedAt: time.Now(),
	}
	r.records[rec.ID] = rec
	return rec, nil
}

func (r *stubAreaRepo) FindByID(_ context.Context, id uint) (*repository.AreaRecord, error) {
	rec, ok := r.records[id]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (r *stubAreaRepo) FindByProducerID(_ context.Context, producerID uint) ([]repository.AreaRecord, error) {
	var out []repository.AreaRecord
	for _, rec := range r.records {
		if rec.ProducerID == producerID && rec.Active {
			out = append(out, *rec)
		}
	}
	return out, nil
}

func (r *stubAreaRepo) FindAll(_ context.Context) ([]repository.AreaRecord, error) {
	var out []repository.AreaRecord
	for _, rec := range r.records {
		if rec.Active {
			out = append(out, *rec)
		}
	}
	return out, nil
}

func (r *stubAreaRepo) UpdateStatus(_ context.Context, id uint, active bool) (*repository.AreaRecord, error) {
	r.log("area.updateStatus")
	rec, ok := r.records[id]
	if !ok {
		return nil, nil
	}
	rec.Active = active
	rec.UpdatedAt = time.Now()
	cp := *rec
	return &cp, nil
}

func (r *stubAreaRepo) Update(_ context.Context, id uint, fields map[string]interface{}) (*repository.AreaRecord, error) {
	r.log("area.update")
	r.updatedFields = fields
	rec, ok := r.records[id]
	if !ok {
		return nil, nil
	}
	if v, ok := fields["name"]; ok {
		rec.Name = v.(string)
	}
	if v, ok := fields["area_m2"]; ok {
		rec.AreaM2 = v.(decimal.Decimal)
	}
	if v, ok := fields["active"]; ok {
		rec.Active = v.(bool)
	}
	if v, ok := fields["soil_type_id"]; ok {
		rec.SoilTypeID = v.(uint)
	}
	if v, ok := fields["irrigation_type_id"]; ok {
		rec.IrrigationTypeID = v.(uint)
	}
	rec.UpdatedAt = time.Now()
	cp := *rec
	return &cp, nil
}

func (r *stubAreaRepo) ExistsBySoilTypeID(_ context.Context, _ uint) (bool, error) {
	return false, nil
}

func (r *stubAreaRepo) ExistsByIrrigationTypeID(_ context.Context, _ uint) (bool, error) {
	return false, nil
}

var _ repository.AreaRepository = (*stubAreaRepo)(nil)

type stubProducerRepo struct {
	producers map[uint]*model.Producer
	calls     *[]string
}

func (r *stubProducerRepo) FindByID(_ context.Context, id uint) (*model.Producer, error) {
	if r.calls != nil {
		*r.calls = append(*r.calls, "producer.find")
	}
	p, ok := r.producers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubProducerRepo) Create(_ context.Context, _ *model.Producer) error { return nil }
func (r *stubProducerRepo) FindByDocument(_ context.Context, _ string) (*model.Producer, error) {
	return nil, gorm.ErrRecordNotFound
}
func (r *stubProducerRepo) List(_ context.Context) ([]model.Producer, error) { return nil, nil }
func (r *stubProducerRepo) Update(_ context.Context, _ *model.Producer) error { return nil }
func (r *stubProducerRepo) Delete(_ context.Context, _ uint) error            { return nil }
func (r *stubProducerRepo) HasAreas(_ context.Context, _ uint) (bool, error)  { return false, nil }

var _ repository.ProducerRepository = (*stubProducerRepo)(nil)

type stubSoilTypeRepo struct {
	soilTypes map[uint]*model.SoilType
	calls     *[]string
}

func (r *stubSoilTypeRepo) FindByID(_ context.Context, id uint) (*model.SoilType, error) {
	if r.calls != nil {
		*r.calls = append(*r.calls, "soil.find")
	}
	st, ok := r.soilTypes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return st, nil
}

func (r *stubSoilTypeRepo) Create(_ context.Context, _ *model.SoilType) error { return nil }
func (r *stubSoilTypeRepo) FindByName(_ context.Context, _ string) (*model.SoilType, error) {
	return nil, gorm.ErrRecordNotFound
}
func (r *stubSoilTypeRepo) List(_ context.Context) ([]model.SoilType, error) { return nil, nil }
func (r *stubSoilTypeRepo) Update(_ context.Context, _ *model.SoilType) error { return nil }
func (r *stubSoilTypeRepo) Delete(_ context.Context, _ uint) error            { return nil }

var _ repository.SoilTypeRepository = (*stubSoilTypeRepo)(nil)

type stubIrrigationTypeRepo struct {
	irrigationTypes map[uint]*model.IrrigationType
	calls           *[]string
}

func (r *stubIrrigationTypeRepo) FindByID(_ context.Context, id uint) (*model.IrrigationType, error) {
	if r.calls != nil {
		*r.calls = append(*r.calls, "irrigation.find")
	}
	it, ok := r.irrigationTypes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return it, nil
}

func (r *stubIrrigationTypeRepo) Create(_ context.Context, _ *model.IrrigationType) error { return nil }
func (r *stubIrrigationTypeRepo) FindByName(_ context.Context, _ string) (*model.IrrigationType, error) {
	return nil, gorm.ErrRecordNotFound
}
func (r *stubIrrigationTypeRepo) List(_ context.Context) ([]model.IrrigationType, error) {
	return nil, nil
}
func (r *stubIrrigationTypeRepo) Update(_ context.Context, _ *model.IrrigationType) error { return nil }
func (r *stubIrrigationTypeRepo) Delete(_ context.Context, _ uint) error                  { return nil }

var _ repository.IrrigationTypeRepository = (*stubIrrigationTypeRepo)(nil)

// ── Fixtures ─────────────────────────────────────────────────────────────────

const validPolygon = `{"type":"Polygon","coordinates":[[[0,0],[1,0],[1,1],[0,1],[0,0]]]}`

func newAreaFixture(calls *[]string) (service.AreaService, *stubAreaRepo) {
	areas := newStubAreaRepo(calls)
	producers := &stubProducerRepo{producers: map[uint]*model.Producer{
		1: {ID: 1, Name: "Rosa Campos", Document: "12345678900"},
	}, calls: calls}
	soils := &stubSoilTypeRepo{soilTypes: map[uint]*model.SoilType{
		2: {ID: 2, Name: "Clay"},
	}, calls: calls}
	irrigations := &stubIrrigationTypeRepo{irrigationTypes: map[uint]*model.IrrigationType{
		3: {ID: 3, Name: "Drip"},
	}, calls: calls}
	return service.NewAreaService(areas, producers, soils, irrigations), areas
}

func createReq() dto.CreateAreaRequest {
	return dto.CreateAreaRequest{
		Name:             "North Field",
		ProducerID:       1,
		SoilTypeID:       2,
		IrrigationTypeID: 3,
		AreaM2:           125000,
		Polygon:          []byte(validPolygon),
	}
}

// ── Create ───────────────────────────────────────────────────────────────────

func TestCreateArea_Success(t *testing.T) {
	var calls []string
	svc, _ := newAreaFixture(&calls)

	resp, err := svc.Create(context.Background(), createReq())
	require.NoError(t, err)

	assert.Equal(t, "North Field", resp.Name)
	assert.True(t, resp.Active)
	assert.True(t, resp.AreaM2.Equal(decimal.NewFromInt(125000)))

	// Reference checks run producer, soil, irrigation, then the insert.
	assert.Equal(t, []string{"producer.find", "soil.find", "irrigation.find", "area.create"}, calls)
}

func TestCreateArea_MissingProducer(t *testing.T) {
	var calls []string
	svc, _ := newAreaFixture(&calls)

	req := createReq()
	req.ProducerID = 99

	_, err := svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, service.ErrProducerNotFound)

	// First check fails: nothing else runs, nothing is persisted.
	assert.Equal(t, []string{"producer.find"}, calls)
}

func TestCreateArea_MissingSoilType(t *testing.T) {
	var calls []string
	svc, _ := newAreaFixture(&calls)

	req := createReq()
	req.SoilTypeID = 99

	_, err := svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, service.ErrSoilTypeNotFound)
	assert.Equal(t, []string{"producer.find", "soil.find"}, calls)
}

func TestCreateArea_MissingIrrigationType(t *testing.T) {
	var calls []string
	svc, _ := newAreaFixture(&calls)

	req := createReq()
	req.IrrigationTypeID = 99

	_, err := svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, service.ErrIrrigationTypeNotFound)
	assert.Equal(t, []string{"producer.find", "soil.find", "irrigation.find"}, calls)
}

// ── Lookups ──────────────────────────────────────────────────────────────────

func TestFindOneArea_NotFound(t *testing.T) {
	svc, _ := newAreaFixture(nil)

	_, err := svc.FindOne(context.Background(), 42)
	assert.ErrorIs(t, err, service.ErrAreaNotFound)
}

func TestFindByProducer_MissingProducer(t *testing.T) {
	svc, _ := newAreaFixture(nil)

	_, err := svc.FindByProducer(context.Background(), 99)
	assert.ErrorIs(t, err, service.ErrProducerNotFound)
}

func TestAreaResponse_HectareConversion(t *testing.T) {
	svc, areas := newAreaFixture(nil)

	resp, err := svc.Create(context.Background(), createReq())
	require.NoError(t, err)

	// The hectare figure comes from the geodesic polygon surface, not the
	// declared measurement.
	areas.records[resp.ID].SizeM2 = 125000

	got, err := svc.FindOne(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Equal(t, 12.5, got.AreaHa)
}

func TestAreaResponse_HectareRounding(t *testing.T) {
	svc, areas := newAreaFixture(nil)

	resp, err := svc.Create(context.Background(), createReq())
	require.NoError(t, err)

	areas.records[resp.ID].SizeM2 = 123456.789 // 12.3456789 ha

	got, err := svc.FindOne(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Equal(t, 12.35, got.AreaHa)
}

// ── UpdateStatus ─────────────────────────────────────────────────────────────

func TestUpdateAreaStatus_Toggle(t *testing.T) {
	var calls []string
	svc, _ := newAreaFixture(&calls)

	created, err := svc.Create(context.Background(), createReq())
	require.NoError(t, err)
	require.True(t, created.Active)

	resp, err := svc.UpdateStatus(context.Background(), created.ID, false)
	require.NoError(t, err)
	assert.False(t, resp.Active)
	assert.Contains(t, calls, "area.updateStatus")
}

func TestUpdateAreaStatus_Idempotent(t *testing.T) {
	var calls []string
	svc, areas := newAreaFixture(&calls)

	created, err := svc.Create(context.Background(), createReq())
	require.NoError(t, err)
	before := areas.records[created.ID].UpdatedAt

	// Already active: the call succeeds but must not touch the row.
	resp, err := svc.UpdateStatus(context.Background(), created.ID, true)
	require.NoError(t, err)
	assert.True(t, resp.Active)
	assert.NotContains(t, calls, "area.updateStatus")
	assert.Equal(t, before, areas.records[created.ID].UpdatedAt)

	// Deactivate, then deactivate again: second call is a no-op too.
	_, err = svc.UpdateStatus(context.Background(), created.ID, false)
	require.NoError(t, err)
	mutations := countOf(calls, "area.updateStatus")

	resp, err = svc.UpdateStatus(context.Background(), created.ID, false)
	require.NoError(t, err)
	assert.False(t, resp.Active)
	assert.Equal(t, mutations, countOf(calls, "area.updateStatus"))
}

func TestUpdateAreaStatus_NotFound(t *testing.T) {
	svc, _ := newAreaFixture(nil)

	_, err := svc.UpdateStatus(context.Background(), 42, true)
	assert.ErrorIs(t, err, service.ErrAreaNotFound)
}

// ── Update ───────────────────────────────────────────────────────────────────

func TestUpdateArea_PartialFields(t *testing.T) {
	svc, areas := newAreaFixture(nil)

	created, err := svc.Create(context.Background(), createReq())
	require.NoError(t, err)

	name := "South Field"
	resp, err := svc.Update(context.Background(), created.ID, dto.UpdateAreaRequest{Name: &name})
	require.NoError(t, err)

	assert.Equal(t, "South Field", resp.Name)
	// Only the provided field reaches the repository.
	assert.Contains(t, areas.updatedFields, "name")
	assert.NotContains(t, areas.updatedFields, "area_m2")
	assert.NotContains(t, areas.updatedFields, "active")
	// Untouched fields keep their values.
	assert.True(t, resp.AreaM2.Equal(created.AreaM2))
	assert.Equal(t, created.Active, resp.Active)
}

func TestUpdateArea_ExplicitZeroValues(t *testing.T) {
	svc, areas := newAreaFixture(nil)

	created, err := svc.Create(context.Background(), createReq())
	require.NoError(t, err)

	// Explicit false and explicit zero are real updates, not "absent".
	active := false
	areaM2 := 0.0
	resp, err := svc.Update(context.Background(), created.ID, dto.UpdateAreaRequest{
		Active: &active,
		AreaM2: &areaM2,
	})
	require.NoError(t, err)

	assert.False(t, resp.Active)
	assert.True(t, resp.AreaM2.IsZero())
	assert.Contains(t, areas.updatedFields, "active")
	assert.Contains(t, areas.updatedFields, "area_m2")
}

func TestUpdateArea_MeasurementRounding(t *testing.T) {
	svc, _ := newAreaFixture(nil)

	created, err := svc.Create(context.Background(), createReq())
	require.NoError(t, err)

	areaM2 := 1234.567
	resp, err := svc.Update(context.Background(), created.ID, dto.UpdateAreaRequest{AreaM2: &areaM2})
	require.NoError(t, err)

	assert.True(t, resp.AreaM2.Equal(decimal.NewFromFloat(1234.57)),
		"stored measurement should round to two decimals, got %s", resp.AreaM2)
}

func TestUpdateArea_NotFound(t *testing.T) {
	svc, _ := newAreaFixture(nil)

	name := "x"
	_, err := svc.Update(context.Background(), 42, dto.UpdateAreaRequest{Name: &name})
	assert.ErrorIs(t, err, service.ErrAreaNotFound)
}

func countOf(calls []string, s string) int {
	n := 0
	for _, c := range calls {
		if c == s {
			n++
		}
	}
	return n
}
