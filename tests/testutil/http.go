package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// HTTPTestCase drives a single handler through a gin test context.
type HTTPTestCase struct {
	Name   string
	Method string
	Path   string
	Body   any
	// Company and User are placed on the context as the scope middleware
	// would; uuid.Nil leaves the request unscoped.
	Company        uuid.UUID
	User           uuid.UUID
	ExpectedStatus int
	Validate       func(t *testing.T, tc *TestContext)
}

// Envelope is the decoded API response with the payload left raw.
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code      string `json:"code"`
		Kind      string `json:"kind"`
		Message   string `json:"message"`
		RequestID string `json:"request_id"`
	} `json:"error"`
}

// RunHTTPTestCases runs each case as a subtest.
func RunHTTPTestCases(t *testing.T, handler gin.HandlerFunc, cases []HTTPTestCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			RunHTTPTestCase(t, handler, tc)
		})
	}
}

// RunHTTPTestCase calls handler with the request described by tc.
func RunHTTPTestCase(t *testing.T, handler gin.HandlerFunc, tc HTTPTestCase) {
	t.Helper()

	var body io.Reader
	if tc.Body != nil {
		raw, err := json.Marshal(tc.Body)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}
	method := tc.Method
	if method == "" {
		method = http.MethodGet
	}
	path := tc.Path
	if path == "" {
		path = "/"
	}

	ctx := NewTestContext(t)
	ctx.Context.Request = httptest.NewRequest(method, path, body)
	if tc.Body != nil {
		ctx.Context.Request.Header.Set("Content-Type", "application/json")
	}
	if tc.Company != uuid.Nil {
		ctx.SetCompanyID(tc.Company)
	}
	if tc.User != uuid.Nil {
		ctx.SetUserID(tc.User)
	}

	handler(ctx.Context)

	if tc.ExpectedStatus != 0 {
		assert.Equal(t, tc.ExpectedStatus, ctx.ResponseCode(), string(ctx.ResponseBody()))
	}
	if tc.Validate != nil {
		tc.Validate(t, ctx)
	}
}

// DecodeEnvelope parses the response envelope.
func DecodeEnvelope(t *testing.T, tc *TestContext) Envelope {
	t.Helper()
	var env Envelope
	require.NoError(t, json.Unmarshal(tc.ResponseBody(), &env), string(tc.ResponseBody()))
	return env
}

// AssertSuccessResponse checks for a successful envelope and decodes its
// data into out when out is non-nil.
func AssertSuccessResponse(t *testing.T, tc *TestContext, out any) {
	t.Helper()
	env := DecodeEnvelope(t, tc)
	require.True(t, env.Success, string(tc.ResponseBody()))
	assert.Nil(t, env.Error)
	if out != nil {
		require.NoError(t, json.Unmarshal(env.Data, out))
	}
}

// AssertErrorResponse checks for a failed envelope carrying code.
func AssertErrorResponse(t *testing.T, tc *TestContext, code string) {
	t.Helper()
	env := DecodeEnvelope(t, tc)
	assert.False(t, env.Success)
	require.NotNil(t, env.Error, string(tc.ResponseBody()))
	assert.Equal(t, code, env.Error.Code)
}
