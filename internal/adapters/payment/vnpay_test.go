package payment

import (
	"net/url"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wishzy/wishzy-backend/internal/platform/config"
)

func newTestGateway() *VNPayGateway {
	gateway := NewVNPayGateway(&config.Config{
		VNPayTmnCode:    "WISHZY01",
		VNPayHashSecret: "testhashsecret",
		VNPayPaymentURL: "https://sandbox.vnpayment.vn/paymentv2/vpcpay.html",
		VNPayReturnURL:  "https://api.wishzy.test/orders/payment/return",
	})
	gateway.now = func() time.Time {
		return time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)
	}
	return gateway
}

func TestBuildPaymentURL(t *testing.T) {
	gateway := newTestGateway()

	paymentURL, err := gateway.BuildPaymentURL("order-123", decimal.NewFromInt(150000), "Thanh toan khoa hoc Go", "203.0.113.7")
	require.NoError(t, err)

	parsed, err := url.Parse(paymentURL)
	require.NoError(t, err)
	assert.Equal(t, "sandbox.vnpayment.vn", parsed.Host)

	query := parsed.Query()
	assert.Equal(t, "2.1.0", query.Get("vnp_Version"))
	assert.Equal(t, "pay", query.Get("vnp_Command"))
	assert.Equal(t, "WISHZY01", query.Get("vnp_TmnCode"))
	assert.Equal(t, "15000000", query.Get("vnp_Amount"))
	assert.Equal(t, "order-123", query.Get("vnp_TxnRef"))
	assert.Equal(t, "203.0.113.7", query.Get("vnp_IpAddr"))
	assert.Equal(t, "20250601103000", query.Get("vnp_CreateDate"))
	assert.NotEmpty(t, query.Get("vnp_SecureHash"))
}

func TestBuildPaymentURL_Validation(t *testing.T) {
	gateway := newTestGateway()

	_, err := gateway.BuildPaymentURL("", decimal.NewFromInt(1000), "info", "127.0.0.1")
	assert.Error(t, err)

	_, err = gateway.BuildPaymentURL("order-1", decimal.NewFromInt(-1), "info", "127.0.0.1")
	assert.Error(t, err)
}

func TestVerifyReturn_RoundTrip(t *testing.T) {
	gateway := newTestGateway()

	paymentURL, err := gateway.BuildPaymentURL("order-456", decimal.NewFromInt(99000), "Thanh toan khoa hoc", "127.0.0.1")
	require.NoError(t, err)

	parsed, err := url.Parse(paymentURL)
	require.NoError(t, err)

	// Simulate the provider echoing the signed params back with a result code.
	params := parsed.Query()
	params.Set("vnp_ResponseCode", "00")
	params.Set("vnp_SecureHash", gateway.sign(encodeSorted(withoutHash(params))))

	orderID, success, err := gateway.VerifyReturn(params)
	require.NoError(t, err)
	assert.Equal(t, "order-456", orderID)
	assert.True(t, success)
}

func TestVerifyReturn_FailedPayment(t *testing.T) {
	gateway := newTestGateway()

	params := url.Values{}
	params.Set("vnp_TxnRef", "order-789")
	params.Set("vnp_ResponseCode", "24")
	params.Set("vnp_SecureHash", gateway.sign(encodeSorted(withoutHash(params))))

	orderID, success, err := gateway.VerifyReturn(params)
	require.NoError(t, err)
	assert.Equal(t, "order-789", orderID)
	assert.False(t, success)
}

func TestVerifyReturn_BadSignature(t *testing.T) {
	gateway := newTestGateway()

	params := url.Values{}
	params.Set("vnp_TxnRef", "order-789")
	params.Set("vnp_ResponseCode", "00")
	params.Set("vnp_SecureHash", "deadbeef")

	_, _, err := gateway.VerifyReturn(params)
	assert.Error(t, err)
}

func TestVerifyReturn_MissingHash(t *testing.T) {
	gateway := newTestGateway()

	params := url.Values{}
	params.Set("vnp_TxnRef", "order-789")

	_, _, err := gateway.VerifyReturn(params)
	assert.Error(t, err)
}

func withoutHash(params url.Values) url.Values {
	out := url.Values{}
	for key, values := range params {
		if key == "vnp_SecureHash" || key == "vnp_SecureHashType" {
			continue
		}
		for _, value := range values {
			out.Add(key, value)
		}
	}
	return out
}
