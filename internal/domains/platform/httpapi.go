package platform

import (
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/Fivegen-LLC/sfputil/internal/errs"
)

const (
	defaultHTTPTimeout = time.Second * 5

	presencePath = "/sfp/{port}/presence"
	eepromPath   = "/sfp/{port}/eeprom"
	domPath      = "/sfp/{port}/dom"
	lpmodePath   = "/sfp/{port}/lpmode"
	resetPath    = "/sfp/{port}/reset"
)

type (
	presenceResponse struct {
		Present bool `json:"present"`
	}

	eepromResponse struct {
		Data string `json:"data"`
	}

	lpmodeResponse struct {
		Enabled bool `json:"enabled"`
	}

	lpmodeRequest struct {
		Enable bool `json:"enable"`
	}

	resultResponse struct {
		Success bool `json:"success"`
	}
)

// HTTPDriver talks to a platform management daemon that owns the transceiver buses.
type HTTPDriver struct {
	client *resty.Client
}

func NewHTTPDriver(cfg HTTPConfig) *HTTPDriver {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}

	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("Accept", "application/json")

	return &HTTPDriver{
		client: client,
	}
}

func (d *HTTPDriver) request(port int) *resty.Request {
	// the daemon always answers JSON, whatever it puts in Content-Type
	return d.client.R().
		SetPathParam("port", strconv.Itoa(port)).
		ForceContentType("application/json")
}

func checkResponse(resp *resty.Response) error {
	switch {
	case resp.StatusCode() == http.StatusNotImplemented:
		return errs.ErrNotImplemented
	case resp.StatusCode() == http.StatusNotFound:
		return fmt.Errorf("%w: %s", errs.ErrInvalidPort, resp.Request.URL)
	case resp.IsError():
		return fmt.Errorf("%d %s: %w", resp.StatusCode(), resp.Status(), errs.ErrAPIError)
	default:
		return nil
	}
}

func (d *HTTPDriver) GetPresence(port int) (present bool, err error) {
	var respBody presenceResponse
	resp, err := d.request(port).
		SetResult(&respBody).
		Get(presencePath)
	if err != nil {
		return false, fmt.Errorf("GetPresence: %w", err)
	}

	if err = checkResponse(resp); err != nil {
		return false, fmt.Errorf("GetPresence: %w", err)
	}

	return respBody.Present, nil
}

func (d *HTTPDriver) ReadEEPROM(port int) (data []byte, err error) {
	if data, err = d.readPage(port, eepromPath); err != nil {
		return nil, fmt.Errorf("ReadEEPROM: %w", err)
	}

	return data, nil
}

// ReadDOM returns nil when the daemon exposes no diagnostics page for the port.
func (d *HTTPDriver) ReadDOM(port int) (data []byte, err error) {
	data, err = d.readPage(port, domPath)
	switch {
	case errors.Is(err, errs.ErrNotImplemented), errors.Is(err, errs.ErrInvalidPort):
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("ReadDOM: %w", err)
	default:
		return data, nil
	}
}

func (d *HTTPDriver) readPage(port int, path string) (data []byte, err error) {
	var respBody eepromResponse
	resp, err := d.request(port).
		SetResult(&respBody).
		Get(path)
	if err != nil {
		return nil, fmt.Errorf("readPage: %w", err)
	}

	if err = checkResponse(resp); err != nil {
		return nil, fmt.Errorf("readPage: %w", err)
	}

	if data, err = hex.DecodeString(respBody.Data); err != nil {
		return nil, fmt.Errorf("readPage: %w", err)
	}

	return data, nil
}

func (d *HTTPDriver) GetLowPowerMode(port int) (enabled bool, err error) {
	var respBody lpmodeResponse
	resp, err := d.request(port).
		SetResult(&respBody).
		Get(lpmodePath)
	if err != nil {
		return false, fmt.Errorf("GetLowPowerMode: %w", err)
	}

	if err = checkResponse(resp); err != nil {
		return false, fmt.Errorf("GetLowPowerMode: %w", err)
	}

	return respBody.Enabled, nil
}

func (d *HTTPDriver) SetLowPowerMode(port int, enable bool) (ok bool, err error) {
	var respBody resultResponse
	resp, err := d.request(port).
		SetBody(lpmodeRequest{Enable: enable}).
		SetResult(&respBody).
		Put(lpmodePath)
	if err != nil {
		return false, fmt.Errorf("SetLowPowerMode: %w", err)
	}

	if err = checkResponse(resp); err != nil {
		return false, fmt.Errorf("SetLowPowerMode: %w", err)
	}

	return respBody.Success, nil
}

func (d *HTTPDriver) Reset(port int) (ok bool, err error) {
	var respBody resultResponse
	resp, err := d.request(port).
		SetResult(&respBody).
		Post(resetPath)
	if err != nil {
		return false, fmt.Errorf("Reset: %w", err)
	}

	if err = checkResponse(resp); err != nil {
		return false, fmt.Errorf("Reset: %w", err)
	}

	return respBody.Success, nil
}
