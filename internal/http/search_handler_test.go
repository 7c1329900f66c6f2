package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/portfolio-service/internal/middleware"
	"github.com/guttosm/portfolio-service/internal/mocks"
	"github.com/guttosm/portfolio-service/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSearchHandler(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		setupMocks     func(*mocks.MockSearchService, *mocks.MockFeedService)
		expectedStatus int
		mustContain    string
	}{
		{
			name: "search passes query and limit",
			url:  "/api/search?q=ttl+cache&limit=3",
			setupMocks: func(s *mocks.MockSearchService, _ *mocks.MockFeedService) {
				s.On("Search", mock.Anything, "ttl cache", 3).Return([]service.SearchDocument{{Slug: "ttl-caches"}}, nil)
			},
			expectedStatus: http.StatusOK,
			mustContain:    `"ttl-caches"`,
		},
		{
			name:           "limit out of range",
			url:            "/api/search?q=go&limit=500",
			setupMocks:     func(*mocks.MockSearchService, *mocks.MockFeedService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "index",
			url:  "/api/search/index",
			setupMocks: func(s *mocks.MockSearchService, _ *mocks.MockFeedService) {
				s.On("Index", mock.Anything).Return([]service.SearchDocument{}, nil)
			},
			expectedStatus: http.StatusOK,
			mustContain:    `"data":[]`,
		},
		{
			name: "index failure",
			url:  "/api/search/index",
			setupMocks: func(s *mocks.MockSearchService, _ *mocks.MockFeedService) {
				s.On("Index", mock.Anything).Return(nil, errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name: "rss",
			url:  "/rss.xml",
			setupMocks: func(_ *mocks.MockSearchService, f *mocks.MockFeedService) {
				f.On("RSS", mock.Anything).Return([]byte(`<rss version="2.0"></rss>`), nil)
			},
			expectedStatus: http.StatusOK,
			mustContain:    `<rss version="2.0">`,
		},
		{
			name: "rss failure",
			url:  "/rss.xml",
			setupMocks: func(_ *mocks.MockSearchService, f *mocks.MockFeedService) {
				f.On("RSS", mock.Anything).Return(nil, errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
			mustContain:    "internal_error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			search := new(mocks.MockSearchService)
			feed := new(mocks.MockFeedService)
			tt.setupMocks(search, feed)

			h := NewSearchHandler(search, feed)
			router := gin.New()
			router.Use(middleware.RequestID(), middleware.ErrorHandler())
			router.GET("/api/search", h.Search)
			router.GET("/api/search/index", h.Index)
			router.GET("/rss.xml", h.RSS)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.url, nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.mustContain)
			search.AssertExpectations(t)
			feed.AssertExpectations(t)
		})
	}
}
