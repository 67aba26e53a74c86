package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"agrishare-backend/internal/domain"
	"agrishare-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestResourceHandler_Create(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		_, resources, _, router := newTestRouter()

		resources.On("ListResource", mock.Anything, mock.MatchedBy(func(r *domain.Resource) bool {
			return r.OwnerID == 1 && r.Name == "Tractor MF-240" && r.ListingType == domain.ListingTypeRent
		})).Return(nil).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Resource).ID = 5
		})

		body := `{"owner_id":1,"name":"Tractor MF-240","category":"machinery","price":150,"listing_type":"rent","quality":7}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/resources", strings.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)

		var res domain.Resource
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
		assert.Equal(t, int32(5), res.ID)
	})

	t.Run("InvalidListingType", func(t *testing.T) {
		_, resources, _, router := newTestRouter()

		resources.On("ListResource", mock.Anything, mock.Anything).Return(domain.ErrInvalidListingType)

		body := `{"owner_id":1,"name":"Tractor","category":"machinery","listing_type":"lease"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/resources", strings.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestResourceHandler_List(t *testing.T) {
	_, resources, _, router := newTestRouter()

	resources.On("ListAvailable", mock.Anything, "machinery", "rent", int32(2), int32(10)).
		Return([]domain.Resource{{ID: 5}}, int32(11), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/resources?category=machinery&listing_type=rent&page=2&page_size=10", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var list struct {
		Items []domain.Resource `json:"items"`
		Total int32             `json:"total"`
		Page  int32             `json:"page"`
	}
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&list))
	assert.Equal(t, int32(11), list.Total)
	assert.Equal(t, int32(2), list.Page)
	assert.Len(t, list.Items, 1)
}

func TestResourceHandler_Update(t *testing.T) {
	t.Run("OwnerUpdatesPrice", func(t *testing.T) {
		_, resources, _, router := newTestRouter()

		resources.On("UpdateResource", mock.Anything, int32(5), int32(1), mock.MatchedBy(func(f service.ResourceUpdate) bool {
			return f.Price != nil && *f.Price == 175 && f.Name == nil
		})).Return(&domain.Resource{ID: 5, OwnerID: 1, Price: 175}, nil)

		body := `{"owner_id":1,"price":175}`
		req := httptest.NewRequest(http.MethodPut, "/api/v1/resources/5", strings.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("NonOwnerForbidden", func(t *testing.T) {
		_, resources, _, router := newTestRouter()

		resources.On("UpdateResource", mock.Anything, int32(5), int32(2), mock.Anything).
			Return(nil, domain.ErrNotOwner)

		body := `{"owner_id":2,"price":175}`
		req := httptest.NewRequest(http.MethodPut, "/api/v1/resources/5", strings.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("AvailabilityToggleBlocked", func(t *testing.T) {
		_, resources, _, router := newTestRouter()

		resources.On("UpdateResource", mock.Anything, int32(5), int32(1), mock.Anything).
			Return(nil, domain.ErrHasActiveTransactions)

		body := `{"owner_id":1,"is_available":true}`
		req := httptest.NewRequest(http.MethodPut, "/api/v1/resources/5", strings.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestResourceHandler_Delete(t *testing.T) {
	t.Run("NoContent", func(t *testing.T) {
		_, resources, _, router := newTestRouter()

		resources.On("RemoveResource", mock.Anything, int32(5), int32(1)).Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/api/v1/resources/5?owner_id=1", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("MissingOwnerID", func(t *testing.T) {
		_, _, _, router := newTestRouter()

		req := httptest.NewRequest(http.MethodDelete, "/api/v1/resources/5", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestResourceHandler_ListByOwner(t *testing.T) {
	_, resources, _, router := newTestRouter()

	resources.On("ListMyResources", mock.Anything, int32(1), int32(1), int32(20)).
		Return([]domain.Resource{{ID: 5}, {ID: 6}}, int32(2), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/1/resources", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
