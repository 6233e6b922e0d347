package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestMetricsMiddleware(t *testing.T) {
	Convey("Given a wrapped handler", t, func() {
		h := MetricsMiddleware(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTeapot)
			_, _ = w.Write([]byte("tea"))
		}, "teapot")

		Convey("When it is served", func() {
			w := httptest.NewRecorder()
			h(w, httptest.NewRequest("GET", "/teapot", http.NoBody))

			Convey("Then the status and body should pass through", func() {
				So(w.Code, ShouldEqual, http.StatusTeapot)
				So(w.Body.String(), ShouldEqual, "tea")
			})
		})
	})
}

func TestErrorClassification(t *testing.T) {
	Convey("Given HTTP status codes", t, func() {
		cases := []struct {
			code     int
			kind     string
			severity string
		}{
			{http.StatusInternalServerError, "server_error", "high"},
			{http.StatusServiceUnavailable, "server_error", "high"},
			{http.StatusUnprocessableEntity, "invalid_record", "medium"},
			{http.StatusNotFound, "not_found", "medium"},
			{http.StatusBadRequest, "client_error", "medium"},
			{http.StatusOK, "unknown", "low"},
		}
		for _, c := range cases {
			So(getErrorType(c.code), ShouldEqual, c.kind)
			So(getErrorSeverity(c.code), ShouldEqual, c.severity)
		}
	})
}
