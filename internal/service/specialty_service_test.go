package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jackc/pgx/v5"

	"github.com/medcore/auth-service/internal/domain"
	"github.com/medcore/auth-service/internal/repository"
)

func TestSpecialtyCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		specs := new(MockSpecialtyRepo)
		depts := new(MockDepartmentRepo)
		svc := NewSpecialtyService(specs, depts)

		depts.On("GetByID", ctx, "d1").Return(&domain.Department{ID: "d1", Name: "Cardiology"}, nil).Once()
		specs.On("Create", ctx, mock.AnythingOfType("*domain.Specialty")).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Specialty).ID = "s1"
		}).Return(nil).Once()
		specs.On("GetByID", ctx, "s1").Return(&domain.Specialty{
			ID:           "s1",
			Name:         "Arrhythmia",
			DepartmentID: "d1",
			Department:   &domain.Department{ID: "d1", Name: "Cardiology"},
		}, nil).Once()

		spec, err := svc.Create(ctx, "Arrhythmia", nil, "d1")

		require.NoError(t, err)
		assert.Equal(t, "s1", spec.ID)
		require.NotNil(t, spec.Department)
		assert.Equal(t, "Cardiology", spec.Department.Name)
	})

	t.Run("UnknownDepartment", func(t *testing.T) {
		specs := new(MockSpecialtyRepo)
		depts := new(MockDepartmentRepo)
		svc := NewSpecialtyService(specs, depts)

		depts.On("GetByID", ctx, "missing").Return(nil, pgx.ErrNoRows).Once()

		_, err := svc.Create(ctx, "Arrhythmia", nil, "missing")

		de := domainErr(t, err)
		assert.Equal(t, "VALIDATION_FAILED", de.Code)
		specs.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("DuplicateName", func(t *testing.T) {
		specs := new(MockSpecialtyRepo)
		depts := new(MockDepartmentRepo)
		svc := NewSpecialtyService(specs, depts)

		depts.On("GetByID", ctx, "d1").Return(&domain.Department{ID: "d1"}, nil).Once()
		specs.On("Create", ctx, mock.AnythingOfType("*domain.Specialty")).Return(repository.ErrDuplicate).Once()

		_, err := svc.Create(ctx, "Arrhythmia", nil, "d1")

		assert.Equal(t, "ALREADY_EXISTS", domainErr(t, err).Code)
	})
}

func TestSpecialtyUpdate(t *testing.T) {
	ctx := context.Background()

	existing := func() *domain.Specialty {
		return &domain.Specialty{ID: "s1", Name: "Arrhythmia", DepartmentID: "d1"}
	}

	t.Run("DepartmentChangeRevalidated", func(t *testing.T) {
		specs := new(MockSpecialtyRepo)
		depts := new(MockDepartmentRepo)
		svc := NewSpecialtyService(specs, depts)

		specs.On("GetByID", ctx, "s1").Return(existing(), nil).Once()
		depts.On("GetByID", ctx, "missing").Return(nil, pgx.ErrNoRows).Once()

		missing := "missing"
		_, err := svc.Update(ctx, "s1", SpecialtyInput{DepartmentID: &missing})

		de := domainErr(t, err)
		assert.Equal(t, "VALIDATION_FAILED", de.Code)
		specs.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("UnchangedDepartmentNotRevalidated", func(t *testing.T) {
		specs := new(MockSpecialtyRepo)
		depts := new(MockDepartmentRepo)
		svc := NewSpecialtyService(specs, depts)

		specs.On("GetByID", ctx, "s1").Return(existing(), nil).Once()
		specs.On("Update", ctx, mock.AnythingOfType("*domain.Specialty")).Return(nil).Once()
		specs.On("GetByID", ctx, "s1").Return(existing(), nil).Once()

		same := "d1"
		name := "Electrophysiology"
		_, err := svc.Update(ctx, "s1", SpecialtyInput{Name: &name, DepartmentID: &same})

		require.NoError(t, err)
		depts.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("NotFound", func(t *testing.T) {
		specs := new(MockSpecialtyRepo)
		svc := NewSpecialtyService(specs, new(MockDepartmentRepo))

		specs.On("GetByID", ctx, "ghost").Return(nil, pgx.ErrNoRows).Once()

		_, err := svc.Update(ctx, "ghost", SpecialtyInput{})

		de := domainErr(t, err)
		assert.Equal(t, http.StatusNotFound, de.HTTPStatus)
		assert.Equal(t, "specialty not found", de.Message)
	})
}

func TestSpecialtyDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("Unconditional", func(t *testing.T) {
		specs := new(MockSpecialtyRepo)
		svc := NewSpecialtyService(specs, new(MockDepartmentRepo))

		specs.On("Delete", ctx, "s1").Return(nil).Once()

		require.NoError(t, svc.Delete(ctx, "s1"))
	})

	t.Run("NotFound", func(t *testing.T) {
		specs := new(MockSpecialtyRepo)
		svc := NewSpecialtyService(specs, new(MockDepartmentRepo))

		specs.On("Delete", ctx, "ghost").Return(pgx.ErrNoRows).Once()

		err := svc.Delete(ctx, "ghost")

		assert.Equal(t, http.StatusNotFound, domainErr(t, err).HTTPStatus)
	})
}
