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

func TestDepartmentCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		depts := new(MockDepartmentRepo)
		specs := new(MockSpecialtyRepo)
		svc := NewDepartmentService(depts, specs)

		depts.On("Create", ctx, mock.AnythingOfType("*domain.Department")).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Department).ID = "d1"
		}).Return(nil).Once()

		dept, err := svc.Create(ctx, "Cardiology", nil)

		require.NoError(t, err)
		assert.Equal(t, "d1", dept.ID)
		assert.Equal(t, "Cardiology", dept.Name)
	})

	t.Run("DuplicateName", func(t *testing.T) {
		depts := new(MockDepartmentRepo)
		svc := NewDepartmentService(depts, new(MockSpecialtyRepo))

		depts.On("Create", ctx, mock.AnythingOfType("*domain.Department")).Return(repository.ErrDuplicate).Once()

		_, err := svc.Create(ctx, "Cardiology", nil)

		de := domainErr(t, err)
		assert.Equal(t, "ALREADY_EXISTS", de.Code)
		assert.Equal(t, http.StatusBadRequest, de.HTTPStatus)
	})
}

func TestDepartmentList(t *testing.T) {
	ctx := context.Background()

	t.Run("GroupsSpecialtiesByDepartment", func(t *testing.T) {
		depts := new(MockDepartmentRepo)
		specs := new(MockSpecialtyRepo)
		svc := NewDepartmentService(depts, specs)

		depts.On("List", ctx).Return([]domain.Department{
			{ID: "d1", Name: "Cardiology"},
			{ID: "d2", Name: "Oncology"},
		}, nil).Once()
		specs.On("List", ctx).Return([]domain.Specialty{
			{ID: "s1", Name: "Arrhythmia", DepartmentID: "d1"},
			{ID: "s2", Name: "Hemodynamics", DepartmentID: "d1"},
		}, nil).Once()

		result, err := svc.List(ctx)

		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Len(t, result[0].Specialties, 2)
		assert.Empty(t, result[1].Specialties)
	})
}

func TestDepartmentGet(t *testing.T) {
	ctx := context.Background()

	t.Run("NotFound", func(t *testing.T) {
		depts := new(MockDepartmentRepo)
		svc := NewDepartmentService(depts, new(MockSpecialtyRepo))

		depts.On("GetByID", ctx, "ghost").Return(nil, pgx.ErrNoRows).Once()

		_, err := svc.Get(ctx, "ghost")

		de := domainErr(t, err)
		assert.Equal(t, http.StatusNotFound, de.HTTPStatus)
		assert.Equal(t, "department not found", de.Message)
	})

	t.Run("IncludesSpecialties", func(t *testing.T) {
		depts := new(MockDepartmentRepo)
		specs := new(MockSpecialtyRepo)
		svc := NewDepartmentService(depts, specs)

		depts.On("GetByID", ctx, "d1").Return(&domain.Department{ID: "d1", Name: "Cardiology"}, nil).Once()
		specs.On("ListByDepartment", ctx, "d1").Return([]domain.Specialty{
			{ID: "s1", Name: "Arrhythmia", DepartmentID: "d1"},
		}, nil).Once()

		dept, err := svc.Get(ctx, "d1")

		require.NoError(t, err)
		require.Len(t, dept.Specialties, 1)
		assert.Equal(t, "s1", dept.Specialties[0].ID)
	})
}

func TestDepartmentUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("PartialUpdateKeepsUnsetFields", func(t *testing.T) {
		depts := new(MockDepartmentRepo)
		svc := NewDepartmentService(depts, new(MockSpecialtyRepo))

		desc := "heart care"
		depts.On("GetByID", ctx, "d1").Return(&domain.Department{ID: "d1", Name: "Cardiology", Description: &desc}, nil).Once()
		depts.On("Update", ctx, mock.MatchedBy(func(d *domain.Department) bool {
			return d.Name == "Cardiology" && d.Description != nil && *d.Description == "updated"
		})).Return(nil).Once()

		updated := "updated"
		dept, err := svc.Update(ctx, "d1", DepartmentInput{Description: &updated})

		require.NoError(t, err)
		assert.Equal(t, "Cardiology", dept.Name)
	})

	t.Run("DuplicateNameOnUpdate", func(t *testing.T) {
		depts := new(MockDepartmentRepo)
		svc := NewDepartmentService(depts, new(MockSpecialtyRepo))

		depts.On("GetByID", ctx, "d1").Return(&domain.Department{ID: "d1", Name: "Cardiology"}, nil).Once()
		depts.On("Update", ctx, mock.AnythingOfType("*domain.Department")).Return(repository.ErrDuplicate).Once()

		name := "Oncology"
		_, err := svc.Update(ctx, "d1", DepartmentInput{Name: &name})

		assert.Equal(t, "ALREADY_EXISTS", domainErr(t, err).Code)
	})
}

func TestDepartmentDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("BlockedWhileSpecialtiesExist", func(t *testing.T) {
		depts := new(MockDepartmentRepo)
		specs := new(MockSpecialtyRepo)
		svc := NewDepartmentService(depts, specs)

		depts.On("GetByID", ctx, "d1").Return(&domain.Department{ID: "d1"}, nil).Once()
		specs.On("CountByDepartment", ctx, "d1").Return(2, nil).Once()

		err := svc.Delete(ctx, "d1")

		de := domainErr(t, err)
		assert.Equal(t, "CONFLICT", de.Code)
		assert.Equal(t, http.StatusBadRequest, de.HTTPStatus)
		depts.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("RaceBackstoppedByForeignKey", func(t *testing.T) {
		depts := new(MockDepartmentRepo)
		specs := new(MockSpecialtyRepo)
		svc := NewDepartmentService(depts, specs)

		depts.On("GetByID", ctx, "d1").Return(&domain.Department{ID: "d1"}, nil).Once()
		specs.On("CountByDepartment", ctx, "d1").Return(0, nil).Once()
		depts.On("Delete", ctx, "d1").Return(repository.ErrReferenced).Once()

		err := svc.Delete(ctx, "d1")

		assert.Equal(t, "CONFLICT", domainErr(t, err).Code)
	})

	t.Run("Success", func(t *testing.T) {
		depts := new(MockDepartmentRepo)
		specs := new(MockSpecialtyRepo)
		svc := NewDepartmentService(depts, specs)

		depts.On("GetByID", ctx, "d1").Return(&domain.Department{ID: "d1"}, nil).Once()
		specs.On("CountByDepartment", ctx, "d1").Return(0, nil).Once()
		depts.On("Delete", ctx, "d1").Return(nil).Once()

		require.NoError(t, svc.Delete(ctx, "d1"))
	})
}
