package server

import (
	"io"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	"github.com/kabecheck/kabecheck/internal/domain"
)

func testServer() *Server {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return New(nil, log)
}

func doRequest(s *Server, method, path, body string) *fasthttp.RequestCtx {
	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.SetMethod(method)
	ctx.Request.SetRequestURI(path)
	if body != "" {
		ctx.Request.SetBodyString(body)
	}
	s.Handler(ctx)
	return ctx
}

func TestHandlerParttime(t *testing.T) {
	s := testServer()

	body, err := json.Marshal(domain.ParttimeInput{
		Age:           20,
		AnnualIncome:  1200000,
		IsStudent:     true,
		DependentType: domain.DependentParent,
		CompanySize:   domain.LargeCompany,
		WeeklyHours:   25,
	})
	require.NoError(t, err)

	ctx := doRequest(s, fasthttp.MethodPost, "/v1/parttime", string(body))
	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.Equal(t, "application/json", string(ctx.Response.Header.ContentType()))

	var result domain.ParttimeResult
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &result))
	assert.Equal(t, int64(1200000), result.TotalIncome)
	assert.Equal(t, int64(0), result.IncomeTax)
	assert.Equal(t, int64(27000), result.ResidentTax)
	assert.Equal(t, int64(1173000), result.NetIncome)
	require.NotNil(t, result.NextWall)
	assert.Equal(t, "130万円の壁", result.NextWall.Name)
}

func TestHandlerFreelance(t *testing.T) {
	s := testServer()

	body, err := json.Marshal(domain.FreelanceInput{
		Age:           22,
		AnnualRevenue: 1500000,
		AnnualExpense: 300000,
		IsStudent:     true,
		DependentType: domain.DependentParent,
		FilingType:    domain.FilingBlue65,
		BusinessType:  domain.BusinessWriter,
	})
	require.NoError(t, err)

	ctx := doRequest(s, fasthttp.MethodPost, "/v1/freelance", string(body))
	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	var result domain.FreelanceResult
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &result))
	assert.Equal(t, int64(550000), result.BusinessIncome)
	assert.True(t, result.StudentPensionExemption)
	assert.True(t, result.ConfirmationRequired)
}

func TestHandlerRejectsBadRequests(t *testing.T) {
	s := testServer()

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		status int
	}{
		{"Wrong method", fasthttp.MethodGet, "/v1/parttime", "", fasthttp.StatusMethodNotAllowed},
		{"Unknown path", fasthttp.MethodPost, "/v1/unknown", "{}", fasthttp.StatusNotFound},
		{"Malformed parttime body", fasthttp.MethodPost, "/v1/parttime", "{broken", fasthttp.StatusBadRequest},
		{"Malformed freelance body", fasthttp.MethodPost, "/v1/freelance", "[1,2]", fasthttp.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := doRequest(s, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.status, ctx.Response.StatusCode())

			var er ErrorResponse
			require.NoError(t, json.Unmarshal(ctx.Response.Body(), &er))
			assert.Equal(t, tt.status, er.Status)
			assert.NotEmpty(t, er.Message)
		})
	}
}

func TestNewDefaults(t *testing.T) {
	s := New(nil, nil)
	require.NotNil(t, s.Engine)
	require.NotNil(t, s.Log)
}
