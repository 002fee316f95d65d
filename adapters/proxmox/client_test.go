package proxmox

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/spikenet-labs/serverdesk/adapters"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	method string
	path   string
}

func newStub(t *testing.T, fail map[string]int) (*Client, *[]call) {
	calls := &[]call{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "PVEAPIToken=ops@pve!desk=secret", r.Header.Get("Authorization"))
		*calls = append(*calls, call{r.Method, r.URL.Path})
		if code, ok := fail[r.URL.Path]; ok {
			w.WriteHeader(code)
			return
		}
		w.Write([]byte(`{"data":"UPID:pve:0000"}`))
	}))
	t.Cleanup(srv.Close)

	c := New(srv.URL, "pve", "ops@pve!desk", "secret")
	return c, calls
}

func TestCreateClonesConfiguresAndStarts(t *testing.T) {
	c, calls := newStub(t, nil)

	err := c.Create(context.Background(), 205, 129, adapters.InstanceParams{Name: "mc-Skyblock"})
	require.NoError(t, err)

	require.Len(t, *calls, 3)
	assert.Equal(t, call{http.MethodPost, "/api2/json/nodes/pve/lxc/129/clone"}, (*calls)[0])
	assert.Equal(t, call{http.MethodPut, "/api2/json/nodes/pve/lxc/205/config"}, (*calls)[1])
	assert.Equal(t, call{http.MethodPost, "/api2/json/nodes/pve/lxc/205/status/start"}, (*calls)[2])
}

func TestCreateCloneFailureStopsEarly(t *testing.T) {
	c, calls := newStub(t, map[string]int{"/api2/json/nodes/pve/lxc/129/clone": http.StatusInternalServerError})

	err := c.Create(context.Background(), 205, 129, adapters.InstanceParams{Name: "mc-Skyblock"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "clone template 129")
	assert.Len(t, *calls, 1)
}

func TestDestroyStopsThenDeletes(t *testing.T) {
	c, calls := newStub(t, nil)

	err := c.Destroy(context.Background(), 205)
	require.NoError(t, err)

	require.Len(t, *calls, 2)
	assert.Equal(t, call{http.MethodPost, "/api2/json/nodes/pve/lxc/205/status/stop"}, (*calls)[0])
	assert.Equal(t, call{http.MethodDelete, "/api2/json/nodes/pve/lxc/205"}, (*calls)[1])
}
