package attestor

import (
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mr-tron/base58"
	"github.com/nspcc-dev/dvpn-contract/contracts/dvpn/dvpnconst"
	"github.com/nspcc-dev/dvpn-contract/rpc/dvpn"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, s *Service, method, target, body string) (*httptest.ResponseRecorder, map[string]any) {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	var resp map[string]any
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	}
	return rec, resp
}

func TestHTTP_Health(t *testing.T) {
	s, _, _ := newTestService(t)

	rec, resp := serve(t, s, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", resp["status"])
	require.Equal(t, address.Uint160ToString(s.Attestor()), resp["attestor"])
}

func TestHTTP_Metrics(t *testing.T) {
	s, _, _ := newTestService(t)

	rec, _ := serve(t, s, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestHTTP_Config(t *testing.T) {
	s, l, _ := newTestService(t)

	rec, resp := serve(t, s, http.MethodGet, "/config", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, false, resp["ok"])

	l.config = &dvpn.Config{
		Authority:     util.Uint160{0xAA},
		Attestor:      s.Attestor(),
		RewardAsset:   util.Uint160{0xBB},
		RewardRateBps: big.NewInt(250),
	}
	rec, resp = serve(t, s, http.MethodGet, "/config", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "250", resp["reward_rate_bps"])
	require.Equal(t, address.Uint160ToString(s.Attestor()), resp["attestor"])
}

func TestHTTP_Node(t *testing.T) {
	s, l, _ := newTestService(t)
	operator := util.Uint160{7}
	metadata := make([]byte, dvpnconst.MetadataHashLen)
	metadata[0] = 1

	addr := address.Uint160ToString(operator)

	rec, _ := serve(t, s, http.MethodGet, "/nodes/"+addr, "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	l.nodes[operator] = &dvpn.Node{
		Operator:             operator,
		BandwidthCapacity:    big.NewInt(100),
		MetadataHash:         metadata,
		NetworkKey:           make([]byte, dvpnconst.NetworkKeyLen),
		StakeAmount:          big.NewInt(5),
		LifetimeBytesRelayed: new(big.Int).SetUint64(dvpnconst.MaxCounter),
		UnclaimedReward:      big.NewInt(0),
		RatingSum:            big.NewInt(9),
		RatingCount:          big.NewInt(2),
		Active:               true,
		RegisteredAt:         big.NewInt(1),
		LastSlashedAt:        big.NewInt(0),
	}

	for _, id := range []string{addr, operator.StringLE()} {
		rec, resp := serve(t, s, http.MethodGet, "/nodes/"+id, "")
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, addr, resp["operator"])
		require.Equal(t, dvpnconst.MaxCounterDec, resp["lifetime_bytes_relayed"])
		require.Equal(t, base58.Encode(metadata), resp["metadata_hash"])
		require.Equal(t, true, resp["active"])
	}

	rec, resp := serve(t, s, http.MethodGet, "/nodes/garbage", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, false, resp["ok"])
}

func TestHTTP_Session(t *testing.T) {
	s, l, _ := newTestService(t)
	consumer, node := util.Uint160{1}, util.Uint160{2}
	l.sessions[[2]util.Uint160{consumer, node}] = &dvpn.Session{
		Consumer:      consumer,
		Node:          node,
		DepositAmount: big.NewInt(1000),
		BytesUsed:     big.NewInt(3),
		OpenedAt:      big.NewInt(12),
		Closed:        true,
	}

	target := "/sessions/" + address.Uint160ToString(consumer) + "/" + address.Uint160ToString(node)
	rec, resp := serve(t, s, http.MethodGet, target, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "1000", resp["deposit_amount"])
	require.Equal(t, true, resp["closed"])

	target = "/sessions/" + address.Uint160ToString(node) + "/" + address.Uint160ToString(consumer)
	rec, _ = serve(t, s, http.MethodGet, target, "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHTTP_Usage(t *testing.T) {
	s, l, _ := newTestService(t)
	operator := address.Uint160ToString(util.Uint160{7})
	consumer := address.Uint160ToString(util.Uint160{1})

	rec, resp := serve(t, s, http.MethodPost, "/usage/node",
		`{"operator":"`+operator+`","bytes":1048576}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, true, resp["ok"])
	require.NotEmpty(t, resp["tx"])

	rec, _ = serve(t, s, http.MethodPost, "/usage/session",
		`{"consumer":"`+consumer+`","node":"`+operator+`","bytes":10}`)
	require.Equal(t, http.StatusOK, rec.Code)

	require.Len(t, l.calls, 2)
	require.Equal(t, "recordUsage", l.calls[0].method)
	require.Equal(t, "submitUsage", l.calls[1].method)
	require.Equal(t, int64(10), l.calls[1].bytes.Int64())

	rec, _ = serve(t, s, http.MethodPost, "/usage/node", `{"operator":"`+operator+`","bytes":-1}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = serve(t, s, http.MethodGet, "/usage/node", "")
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	require.Len(t, l.calls, 2)
}

func TestHTTP_Settle(t *testing.T) {
	s, l, w := newTestService(t)
	consumer := address.Uint160ToString(util.Uint160{1})
	node := address.Uint160ToString(util.Uint160{2})
	body := `{"consumer":"` + consumer + `","node":"` + node + `","total_bytes":2097152}`

	rec, resp := serve(t, s, http.MethodPost, "/sessions/settle", body)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, true, resp["ok"])
	require.Len(t, l.calls, 1)
	require.Equal(t, s.Attestor(), l.calls[0].attestor)

	w.state = vmstate.Fault
	w.exception = dvpnconst.ErrSessionClosed
	rec, resp = serve(t, s, http.MethodPost, "/sessions/settle", body)
	require.Equal(t, http.StatusConflict, rec.Code)
	require.Contains(t, resp["error"], dvpnconst.ErrSessionClosed)
}

func TestHTTP_Balance(t *testing.T) {
	s, l, _ := newTestService(t)
	account := util.Uint160{9}
	addr := address.Uint160ToString(account)

	rec, _ := serve(t, s, http.MethodGet, "/balances/"+addr, "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	l.config = &dvpn.Config{RewardAsset: util.Uint160{0xBB}}
	s.tokens(util.Uint160{}).(*fakeToken).balances[account] = new(big.Int).SetUint64(dvpnconst.MaxCounter)

	rec, resp := serve(t, s, http.MethodGet, "/balances/"+addr, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, addr, resp["account"])
	require.Equal(t, util.Uint160{0xBB}.StringLE(), resp["asset"])
	require.Equal(t, "DVPN", resp["symbol"])
	require.Equal(t, float64(9), resp["decimals"])
	require.Equal(t, dvpnconst.MaxCounterDec, resp["amount"])
}

func TestHTTP_TestInvocationFault(t *testing.T) {
	s, l, _ := newTestService(t)
	operator := address.Uint160ToString(util.Uint160{7})
	body := `{"operator":"` + operator + `","bytes":1}`

	l.faults["recordUsage"] = dvpnconst.ErrNodeNotFound
	rec, resp := serve(t, s, http.MethodPost, "/usage/node", body)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, resp["error"], dvpnconst.ErrNodeNotFound)

	l.faults["recordUsage"] = dvpnconst.ErrNodeInactive
	rec, resp = serve(t, s, http.MethodPost, "/usage/node", body)
	require.Equal(t, http.StatusConflict, rec.Code)
	require.Contains(t, resp["error"], dvpnconst.ErrNodeInactive)

	require.Empty(t, l.calls)
}
