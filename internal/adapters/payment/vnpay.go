package payment

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	portssvc "github.com/wishzy/wishzy-backend/internal/core/ports/services"
	"github.com/wishzy/wishzy-backend/internal/platform/config"
)

const (
	vnpVersion     = "2.1.0"
	vnpCommand     = "pay"
	vnpCurrCode    = "VND"
	vnpLocale      = "vn"
	vnpSuccessCode = "00"

	createDateLayout = "20060102150405"
)

// VNPayGateway builds and verifies VNPay redirect payments using the
// merchant's HMAC-SHA512 hash secret.
type VNPayGateway struct {
	tmnCode    string
	hashSecret string
	paymentURL string
	returnURL  string

	// now is swappable for deterministic vnp_CreateDate in tests.
	now func() time.Time
}

// NewVNPayGateway creates a VNPayGateway from configuration.
func NewVNPayGateway(cfg *config.Config) *VNPayGateway {
	return &VNPayGateway{
		tmnCode:    cfg.VNPayTmnCode,
		hashSecret: cfg.VNPayHashSecret,
		paymentURL: cfg.VNPayPaymentURL,
		returnURL:  cfg.VNPayReturnURL,
		now:        time.Now,
	}
}

var _ portssvc.PaymentGatewaySvc = (*VNPayGateway)(nil)

// BuildPaymentURL creates the signed redirect URL for an order. VNPay expects
// the amount multiplied by 100 with no decimal part.
func (g *VNPayGateway) BuildPaymentURL(orderID string, amount decimal.Decimal, orderInfo, clientIP string) (string, error) {
	if orderID == "" {
		return "", fmt.Errorf("order id is required")
	}
	if amount.IsNegative() {
		return "", fmt.Errorf("amount must not be negative")
	}

	params := url.Values{}
	params.Set("vnp_Version", vnpVersion)
	params.Set("vnp_Command", vnpCommand)
	params.Set("vnp_TmnCode", g.tmnCode)
	params.Set("vnp_Amount", amount.Mul(decimal.NewFromInt(100)).Truncate(0).String())
	params.Set("vnp_CurrCode", vnpCurrCode)
	params.Set("vnp_TxnRef", orderID)
	params.Set("vnp_OrderInfo", orderInfo)
	params.Set("vnp_OrderType", "other")
	params.Set("vnp_Locale", vnpLocale)
	params.Set("vnp_IpAddr", clientIP)
	params.Set("vnp_CreateDate", g.now().Format(createDateLayout))
	params.Set("vnp_ReturnUrl", g.returnURL)

	query := encodeSorted(params)
	secureHash := g.sign(query)

	return g.paymentURL + "?" + query + "&vnp_SecureHash=" + secureHash, nil
}

// VerifyReturn validates the signature on a VNPay return callback and reports
// the order it references and whether payment succeeded.
func (g *VNPayGateway) VerifyReturn(params url.Values) (string, bool, error) {
	receivedHash := params.Get("vnp_SecureHash")
	if receivedHash == "" {
		return "", false, fmt.Errorf("missing vnp_SecureHash parameter")
	}

	// The hash itself is never part of the signed payload.
	signed := url.Values{}
	for key, values := range params {
		if key == "vnp_SecureHash" || key == "vnp_SecureHashType" {
			continue
		}
		for _, value := range values {
			signed.Add(key, value)
		}
	}

	expectedHash := g.sign(encodeSorted(signed))
	if !hmac.Equal([]byte(strings.ToLower(receivedHash)), []byte(expectedHash)) {
		return "", false, fmt.Errorf("invalid vnp_SecureHash signature")
	}

	orderID := params.Get("vnp_TxnRef")
	if orderID == "" {
		return "", false, fmt.Errorf("missing vnp_TxnRef parameter")
	}

	success := params.Get("vnp_ResponseCode") == vnpSuccessCode
	return orderID, success, nil
}

func (g *VNPayGateway) sign(query string) string {
	mac := hmac.New(sha512.New, []byte(g.hashSecret))
	mac.Write([]byte(query))
	return hex.EncodeToString(mac.Sum(nil))
}

// encodeSorted renders the params as a query string with keys in ascending
// order, the exact form VNPay hashes on both sides.
func encodeSorted(params url.Values) string {
	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, key := range keys {
		for _, value := range params[key] {
			if b.Len() > 0 {
				b.WriteByte('&')
			}
			b.WriteString(url.QueryEscape(key))
			b.WriteByte('=')
			b.WriteString(url.QueryEscape(value))
		}
	}
	return b.String()
}
