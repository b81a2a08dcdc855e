package utils

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestSuccessSpreadsPayload(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Success(c, "done", gin.H{"note": gin.H{"id": "n1"}})

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if body["success"] != true {
		t.Error("expected success=true")
	}
	if body["message"] != "done" {
		t.Errorf("unexpected message %v", body["message"])
	}
	if _, ok := body["note"]; !ok {
		t.Error("payload keys must sit at the top level of the envelope")
	}
	if _, ok := body["data"]; ok {
		t.Error("payload must not be nested under a wrapper key")
	}
}

func TestSuccessOmitsEmptyMessage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Success(c, "", nil)

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if len(body) != 1 || body["success"] != true {
		t.Errorf("expected a bare success envelope, got %v", body)
	}
}
