package attestor

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/mr-tron/base58"
	"github.com/nspcc-dev/dvpn-contract/contracts/dvpn/dvpnconst"
	"github.com/nspcc-dev/dvpn-contract/rpc/dvpn"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type (
	nodeUsageRequest struct {
		Operator string `json:"operator"`
		Bytes    uint64 `json:"bytes"`
	}

	sessionUsageRequest struct {
		Consumer string `json:"consumer"`
		Node     string `json:"node"`
		Bytes    uint64 `json:"bytes"`
	}

	settleRequest struct {
		Consumer   string `json:"consumer"`
		Node       string `json:"node"`
		TotalBytes uint64 `json:"total_bytes"`
	}

	txResponse struct {
		OK bool   `json:"ok"`
		Tx string `json:"tx"`
	}

	errorResponse struct {
		OK    bool   `json:"ok"`
		Error string `json:"error"`
	}

	configView struct {
		Authority     string `json:"authority"`
		Attestor      string `json:"attestor"`
		RewardAsset   string `json:"reward_asset"`
		RewardRateBps string `json:"reward_rate_bps"`
	}

	nodeView struct {
		Operator             string `json:"operator"`
		StakeAccount         string `json:"stake_account"`
		BandwidthCapacity    string `json:"bandwidth_capacity"`
		MetadataHash         string `json:"metadata_hash"`
		NetworkKey           string `json:"network_key"`
		StakeAmount          string `json:"stake_amount"`
		LifetimeBytesRelayed string `json:"lifetime_bytes_relayed"`
		UnclaimedReward      string `json:"unclaimed_reward"`
		RatingSum            string `json:"rating_sum"`
		RatingCount          string `json:"rating_count"`
		Active               bool   `json:"active"`
		RegisteredAt         string `json:"registered_at"`
		LastSlashedAt        string `json:"last_slashed_at"`
	}

	balanceView struct {
		Account  string `json:"account"`
		Asset    string `json:"asset"`
		Symbol   string `json:"symbol"`
		Decimals int    `json:"decimals"`
		Amount   string `json:"amount"`
	}

	sessionView struct {
		Consumer      string `json:"consumer"`
		Node          string `json:"node"`
		EscrowAccount string `json:"escrow_account"`
		DepositAmount string `json:"deposit_amount"`
		BytesUsed     string `json:"bytes_used"`
		OpenedAt      string `json:"opened_at"`
		Closed        bool   `json:"closed"`
	}
)

// notFound lists contract failures reported as 404.
var notFound = []string{
	dvpnconst.ErrConfigNotFound,
	dvpnconst.ErrNodeNotFound,
	dvpnconst.ErrSessionNotFound,
}

// Handler returns the HTTP API of the service.
func (s *Service) Handler() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	r.HandleFunc("/config", s.handleConfig).Methods(http.MethodGet)
	r.HandleFunc("/nodes/{operator}", s.handleNode).Methods(http.MethodGet)
	r.HandleFunc("/sessions/{consumer}/{node}", s.handleSession).Methods(http.MethodGet)
	r.HandleFunc("/balances/{account}", s.handleBalance).Methods(http.MethodGet)

	r.HandleFunc("/usage/node", s.handleNodeUsage).Methods(http.MethodPost)
	r.HandleFunc("/usage/session", s.handleSessionUsage).Methods(http.MethodPost)
	r.HandleFunc("/sessions/settle", s.handleSettle).Methods(http.MethodPost)

	return r
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"status":   "ok",
		"attestor": address.Uint160ToString(s.Attestor()),
	})
}

func (s *Service) handleConfig(w http.ResponseWriter, _ *http.Request) {
	cfg, err := s.Config()
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, configView{
		Authority:     address.Uint160ToString(cfg.Authority),
		Attestor:      address.Uint160ToString(cfg.Attestor),
		RewardAsset:   cfg.RewardAsset.StringLE(),
		RewardRateBps: bigString(cfg.RewardRateBps),
	})
}

func (s *Service) handleNode(w http.ResponseWriter, r *http.Request) {
	operator, err := ParseHash(mux.Vars(r)["operator"])
	if err != nil {
		s.writeError(w, err)
		return
	}
	n, err := s.Node(operator)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, newNodeView(n))
}

func (s *Service) handleSession(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	consumer, node, err := parsePair(vars["consumer"], vars["node"])
	if err != nil {
		s.writeError(w, err)
		return
	}
	ss, err := s.Session(consumer, node)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, sessionView{
		Consumer:      address.Uint160ToString(ss.Consumer),
		Node:          address.Uint160ToString(ss.Node),
		EscrowAccount: address.Uint160ToString(ss.EscrowAccount),
		DepositAmount: bigString(ss.DepositAmount),
		BytesUsed:     bigString(ss.BytesUsed),
		OpenedAt:      bigString(ss.OpenedAt),
		Closed:        ss.Closed,
	})
}

func (s *Service) handleBalance(w http.ResponseWriter, r *http.Request) {
	account, err := ParseHash(mux.Vars(r)["account"])
	if err != nil {
		s.writeError(w, err)
		return
	}
	b, err := s.RewardBalance(account)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, balanceView{
		Account:  address.Uint160ToString(account),
		Asset:    b.Asset.StringLE(),
		Symbol:   b.Symbol,
		Decimals: b.Decimals,
		Amount:   bigString(b.Amount),
	})
}

func (s *Service) handleNodeUsage(w http.ResponseWriter, r *http.Request) {
	var req nodeUsageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, fmt.Errorf("invalid request: %w", err))
		return
	}
	operator, err := ParseHash(req.Operator)
	if err != nil {
		s.writeError(w, err)
		return
	}
	h, err := s.RecordUsage(r.Context(), operator, req.Bytes)
	s.writeTx(w, h, err)
}

func (s *Service) handleSessionUsage(w http.ResponseWriter, r *http.Request) {
	var req sessionUsageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, fmt.Errorf("invalid request: %w", err))
		return
	}
	consumer, node, err := parsePair(req.Consumer, req.Node)
	if err != nil {
		s.writeError(w, err)
		return
	}
	h, err := s.SubmitUsage(r.Context(), consumer, node, req.Bytes)
	s.writeTx(w, h, err)
}

func (s *Service) handleSettle(w http.ResponseWriter, r *http.Request) {
	var req settleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, fmt.Errorf("invalid request: %w", err))
		return
	}
	consumer, node, err := parsePair(req.Consumer, req.Node)
	if err != nil {
		s.writeError(w, err)
		return
	}
	h, err := s.Settle(r.Context(), consumer, node, req.TotalBytes)
	s.writeTx(w, h, err)
}

func (s *Service) writeTx(w http.ResponseWriter, h util.Uint256, err error) {
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, txResponse{OK: true, Tx: h.StringLE()})
}

func (s *Service) writeError(w http.ResponseWriter, err error) {
	status := http.StatusBadRequest
	switch {
	case isNotFound(err):
		status = http.StatusNotFound
	case errors.Is(err, ErrTransactionFault):
		status = http.StatusConflict
	}
	s.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func (s *Service) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Debug("can't write response", zap.Error(err))
	}
}

func isNotFound(err error) bool {
	msg := err.Error()
	for i := range notFound {
		if strings.Contains(msg, notFound[i]) {
			return true
		}
	}
	return false
}

func parsePair(consumer, node string) (util.Uint160, util.Uint160, error) {
	c, err := ParseHash(consumer)
	if err != nil {
		return util.Uint160{}, util.Uint160{}, fmt.Errorf("consumer: %w", err)
	}
	n, err := ParseHash(node)
	if err != nil {
		return util.Uint160{}, util.Uint160{}, fmt.Errorf("node: %w", err)
	}
	return c, n, nil
}

func newNodeView(n *dvpn.Node) nodeView {
	return nodeView{
		Operator:             address.Uint160ToString(n.Operator),
		StakeAccount:         address.Uint160ToString(n.StakeAccount),
		BandwidthCapacity:    bigString(n.BandwidthCapacity),
		MetadataHash:         base58.Encode(n.MetadataHash),
		NetworkKey:           base58.Encode(n.NetworkKey),
		StakeAmount:          bigString(n.StakeAmount),
		LifetimeBytesRelayed: bigString(n.LifetimeBytesRelayed),
		UnclaimedReward:      bigString(n.UnclaimedReward),
		RatingSum:            bigString(n.RatingSum),
		RatingCount:          bigString(n.RatingCount),
		Active:               n.Active,
		RegisteredAt:         bigString(n.RegisteredAt),
		LastSlashedAt:        bigString(n.LastSlashedAt),
	}
}

// bigString renders contract integers as decimal strings, they may exceed
// the JSON number precision.
func bigString(v *big.Int) string {
	if v == nil {
		return "0"
	}
	return v.String()
}
