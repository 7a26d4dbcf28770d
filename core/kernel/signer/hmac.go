package signer

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/vantagefx/exkernel/core/types"
)

// HmacExchangeType selects which venue's canonical-string convention an
// HmacSigner applies. Binance and Bybit both sign with HMAC-SHA256 but
// disagree on what gets concatenated and which headers carry the result.
type HmacExchangeType int

const (
	HmacBinance HmacExchangeType = iota
	HmacBybit
)

// HmacSigner is the HMAC-SHA256 family: Binance's
// query-string-plus-timestamp convention and Bybit v5's
// timestamp+key+recv_window+payload convention, selected by its
// HmacExchangeType.
type HmacSigner struct {
	apiKey     string
	secretKey  string
	kind       HmacExchangeType
	recvWindow int64
}

// NewHmacSigner builds an HMAC signer for Binance or Bybit. recvWindowMs
// only matters for HmacBybit; Binance has no receive-window concept.
func NewHmacSigner(apiKey, secretKey string, kind HmacExchangeType, recvWindowMs int64) (*HmacSigner, error) {
	if err := requireNonEmpty("api key", apiKey); err != nil {
		return nil, err
	}
	if err := requireNonEmpty("secret key", secretKey); err != nil {
		return nil, err
	}
	if recvWindowMs <= 0 {
		recvWindowMs = 5000
	}
	return &HmacSigner{apiKey: apiKey, secretKey: secretKey, kind: kind, recvWindow: recvWindowMs}, nil
}

func (s *HmacSigner) hmacHex(payload string) string {
	mac := hmac.New(sha256.New, []byte(s.secretKey))
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}

func (s *HmacSigner) SignRequest(method, endpoint, queryString string, body []byte, timestampMs int64) (SignatureResult, error) {
	switch s.kind {
	case HmacBinance:
		return s.signBinance(method, queryString, body, timestampMs)
	case HmacBybit:
		return s.signBybit(queryString, body, timestampMs)
	default:
		return SignatureResult{}, types.NewAuthError("unknown HMAC exchange type")
	}
}

// signBinance appends timestamp (and, for POST, the raw body) to the query
// string before hashing, then reports X-MBX-APIKEY plus a signature query
// parameter -- Binance verifies the signature over exactly the string it
// receives back on the wire, so the signed params here must be the same
// ones the caller ends up sending.
func (s *HmacSigner) signBinance(method, queryString string, body []byte, timestampMs int64) (SignatureResult, error) {
	withTimestamp := queryString
	if withTimestamp == "" {
		withTimestamp = "timestamp=" + strconv.FormatInt(timestampMs, 10)
	} else {
		withTimestamp += "&timestamp=" + strconv.FormatInt(timestampMs, 10)
	}
	if len(body) > 0 && method == "POST" {
		if bodyStr := strings.TrimSpace(string(body)); bodyStr != "" {
			withTimestamp += "&" + bodyStr
		}
	}

	signature := s.hmacHex(withTimestamp)
	signedParams := parseQueryString(withTimestamp)
	signedParams = append(signedParams, KV{Key: "signature", Value: signature})

	return SignatureResult{
		Headers:      map[string]string{"X-MBX-APIKEY": s.apiKey},
		SignedParams: signedParams,
	}, nil
}

// signBybit hashes timestamp+apikey+recv_window+(query string or raw body)
// per Bybit v5's unified canonical string, reporting the four X-BAPI-*
// headers Bybit expects instead of a query parameter.
func (s *HmacSigner) signBybit(queryString string, body []byte, timestampMs int64) (SignatureResult, error) {
	recvWindowStr := strconv.FormatInt(s.recvWindow, 10)
	timestampStr := strconv.FormatInt(timestampMs, 10)

	payloadTail := queryString
	if len(body) > 0 {
		payloadTail = string(body)
	}
	payload := timestampStr + s.apiKey + recvWindowStr + payloadTail

	signature := s.hmacHex(payload)

	return SignatureResult{
		Headers: map[string]string{
			"X-BAPI-API-KEY":     s.apiKey,
			"X-BAPI-TIMESTAMP":   timestampStr,
			"X-BAPI-RECV-WINDOW": recvWindowStr,
			"X-BAPI-SIGN":        signature,
		},
		SignedParams: parseQueryString(queryString),
	}, nil
}
