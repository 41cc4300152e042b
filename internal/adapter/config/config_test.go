package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseConfig_Defaults(t *testing.T) {
	conf, err := parseConfig("test", nil)
	assert.NoError(t, err)

	assert.Equal(t, "localhost:8080", conf.HTTP.HostString)
	assert.Equal(t, AppModeDevelop, conf.App.Mode)
	assert.Equal(t, 20*time.Second, conf.Orders.CallTimeout)
	assert.Equal(t, "EUR", conf.PayPal.Currency)
	assert.Equal(t, "https://api-m.sandbox.paypal.com", conf.PayPal.APIBase())
}

func TestParseConfig_EnvOverridesFlags(t *testing.T) {
	t.Setenv("RUN_ADDRESS", ":9090")
	t.Setenv("ORDER_CALL_TIMEOUT", "3s")
	t.Setenv("PAYPAL_MODE", PayPalModeLive)

	conf, err := parseConfig("test", []string{"-a", ":7070", "-call-timeout", "1m"})
	assert.NoError(t, err)

	assert.Equal(t, ":9090", conf.HTTP.HostString)
	assert.Equal(t, 3*time.Second, conf.Orders.CallTimeout)
	assert.Equal(t, "https://api-m.paypal.com", conf.PayPal.APIBase())
}

func TestParseConfig_BadTimeout(t *testing.T) {
	_, err := parseConfig("test", []string{"-call-timeout", "0s"})
	assert.Error(t, err)
}

func TestPayPal_ExplicitBaseURL(t *testing.T) {
	p := PayPal{Mode: PayPalModeLive, BaseURL: "http://127.0.0.1:1234"}
	assert.Equal(t, "http://127.0.0.1:1234", p.APIBase())
}
