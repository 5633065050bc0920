package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mukeshsilwal/bus-booking-system-sub000/internal/gateway"
	"github.com/Mukeshsilwal/bus-booking-system-sub000/internal/shared/config"
)

func TestBuildGatewayForm(t *testing.T) {
	sig := &gateway.SignatureResponse{
		Signature:        "abc123==",
		SignedFieldNames: "total_amount,transaction_uuid,product_code",
		GatewayURL:       "https://pay.example.com/form",
		ProductCode:      "EPAYTEST",
	}
	payment := config.PaymentConfig{
		SuccessURL: "http://localhost:3000/payment/success",
		FailureURL: "http://localhost:3000/payment/failure",
	}

	form, err := buildGatewayForm(sig, "1234567890", 1550.5, payment)
	require.NoError(t, err)

	assert.Equal(t, "https://pay.example.com/form", form.URL)
	assert.Equal(t, "POST", form.Method)
	assert.Equal(t, "1550.50", form.Fields["amount"])
	assert.Equal(t, "1550.50", form.Fields["total_amount"])
	assert.Equal(t, "0", form.Fields["tax_amount"])
	assert.Equal(t, "0", form.Fields["product_service_charge"])
	assert.Equal(t, "0", form.Fields["product_delivery_charge"])
	assert.Equal(t, "1234567890", form.Fields["transaction_uuid"])
	assert.Equal(t, "EPAYTEST", form.Fields["product_code"])
	assert.Equal(t, "abc123==", form.Fields["signature"])
	assert.Equal(t, "total_amount,transaction_uuid,product_code", form.Fields["signed_field_names"])
	assert.Equal(t, "http://localhost:3000/payment/success", form.Fields["success_url"])
	assert.Equal(t, "http://localhost:3000/payment/failure", form.Fields["failure_url"])

	assert.Contains(t, form.AutoSubmitHTML, `action="https://pay.example.com/form"`)
	assert.Contains(t, form.AutoSubmitHTML, `name="transaction_uuid" value="1234567890"`)
	assert.Contains(t, form.AutoSubmitHTML, "document.forms[0].submit()")
}

func TestBuildGatewayFormDefaultsSignedFields(t *testing.T) {
	sig := &gateway.SignatureResponse{
		Signature:  "sig",
		GatewayURL: "https://pay.example.com/form",
	}

	form, err := buildGatewayForm(sig, "0000000000", 100, config.PaymentConfig{})
	require.NoError(t, err)

	assert.Equal(t, signedFieldNames, form.Fields["signed_field_names"])
	assert.Equal(t, "100", form.Fields["total_amount"])
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "700", formatAmount(700))
	assert.Equal(t, "0", formatAmount(0))
	assert.Equal(t, "99.90", formatAmount(99.9))
}
