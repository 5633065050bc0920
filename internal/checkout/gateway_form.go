package checkout

import (
	"fmt"
	"html/template"
	"strconv"
	"strings"

	"github.com/Mukeshsilwal/bus-booking-system-sub000/internal/gateway"
	"github.com/Mukeshsilwal/bus-booking-system-sub000/internal/shared/config"
)

// signedFieldNames is the default field list the signature covers when
// the provider does not dictate one.
const signedFieldNames = "total_amount,transaction_uuid,product_code"

var autoSubmitTemplate = template.Must(template.New("gateway").Parse(`<!DOCTYPE html>
<html>
<body onload="document.forms[0].submit()">
<form action="{{.URL}}" method="POST">
{{- range $name, $value := .Fields}}
<input type="hidden" name="{{$name}}" value="{{$value}}">
{{- end}}
<noscript><button type="submit">Continue to payment</button></noscript>
</form>
</body>
</html>`))

// buildGatewayForm assembles the POST payload the payment provider
// expects, signed fields first, and renders the auto-submit page.
func buildGatewayForm(sig *gateway.SignatureResponse, txnID string, total float64, payment config.PaymentConfig) (*GatewayForm, error) {
	names := sig.SignedFieldNames
	if names == "" {
		names = signedFieldNames
	}
	fields := map[string]string{
		"amount":                  formatAmount(total),
		"tax_amount":              "0",
		"total_amount":            formatAmount(total),
		"transaction_uuid":        txnID,
		"product_code":            sig.ProductCode,
		"product_service_charge":  "0",
		"product_delivery_charge": "0",
		"success_url":             payment.SuccessURL,
		"failure_url":             payment.FailureURL,
		"signed_field_names":      names,
		"signature":               sig.Signature,
	}

	form := &GatewayForm{
		URL:    sig.GatewayURL,
		Method: "POST",
		Fields: fields,
	}

	var html strings.Builder
	if err := autoSubmitTemplate.Execute(&html, form); err != nil {
		return nil, fmt.Errorf("failed to render gateway form: %w", err)
	}
	form.AutoSubmitHTML = html.String()
	return form, nil
}

// formatAmount prints a gateway amount without a spurious fraction when
// the price is whole.
func formatAmount(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}
