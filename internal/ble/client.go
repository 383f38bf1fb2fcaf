// Package ble connects to a GoCube smart cube and streams its turns.
package ble

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"tinygo.org/x/bluetooth"

	rubikscube "github.com/h4rr9/rubiks-cube"
	"github.com/h4rr9/rubiks-cube/internal/protocol"
)

var (
	ErrNotConnected     = errors.New("ble: not connected to device")
	ErrAlreadyConnected = errors.New("ble: already connected to a device")
	ErrDeviceNotFound   = errors.New("ble: device not found")
	ErrServiceNotFound  = errors.New("ble: GoCube service not found")
)

var (
	serviceUUID = bluetooth.NewUUID(uuid.MustParse(protocol.ServiceUUID))
	txCharUUID  = bluetooth.NewUUID(uuid.MustParse(protocol.TxCharUUID))
	rxCharUUID  = bluetooth.NewUUID(uuid.MustParse(protocol.RxCharUUID))
)

// ScanResult is a discovered GoCube.
type ScanResult struct {
	Name    string
	RSSI    int16
	Address bluetooth.Address
}

// ID returns the platform address string used to pick a device.
func (r ScanResult) ID() string {
	return r.Address.String()
}

// Client manages the connection to one GoCube.
type Client struct {
	adapter *bluetooth.Adapter
	device  bluetooth.Device
	rxChar  bluetooth.DeviceCharacteristic
	log     logrus.FieldLogger

	mu         sync.RWMutex
	connected  bool
	deviceName string
	battery    int

	onTurns   func([]rubikscube.Turn)
	onMessage func(*protocol.Message)
}

// NewClient enables the default adapter.
func NewClient(log logrus.FieldLogger) (*Client, error) {
	adapter := bluetooth.DefaultAdapter
	if err := adapter.Enable(); err != nil {
		return nil, fmt.Errorf("enable BLE adapter: %w", err)
	}
	return newClient(adapter, log), nil
}

func newClient(adapter *bluetooth.Adapter, log logrus.FieldLogger) *Client {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Client{
		adapter: adapter,
		log:     log.WithField("component", "ble"),
		battery: -1,
	}
}

// OnTurns sets the callback for turns decoded from rotation messages.
func (c *Client) OnTurns(cb func([]rubikscube.Turn)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onTurns = cb
}

// OnMessage sets the callback for every well-formed message.
func (c *Client) OnMessage(cb func(*protocol.Message)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onMessage = cb
}

// Scan looks for GoCube devices until timeout or ctx is done.
func (c *Client) Scan(ctx context.Context, timeout time.Duration) ([]ScanResult, error) {
	if c.IsConnected() {
		return nil, ErrAlreadyConnected
	}

	var (
		mu      sync.Mutex
		results []ScanResult
		seen    = make(map[string]bool)
		scanErr error
		done    = make(chan struct{})
	)

	go func() {
		defer close(done)
		scanErr = c.adapter.Scan(func(_ *bluetooth.Adapter, r bluetooth.ScanResult) {
			name := r.LocalName()
			if !strings.HasPrefix(strings.ToLower(name), "gocube") {
				return
			}
			mu.Lock()
			defer mu.Unlock()
			if seen[r.Address.String()] {
				return
			}
			seen[r.Address.String()] = true
			results = append(results, ScanResult{Name: name, RSSI: r.RSSI, Address: r.Address})
			c.log.WithField("name", name).Debug("found device")
		})
	}()

	select {
	case <-time.After(timeout):
	case <-ctx.Done():
	}
	if err := c.adapter.StopScan(); err != nil {
		c.log.WithError(err).Debug("stop scan")
	}
	<-done

	if scanErr != nil {
		return nil, fmt.Errorf("scan: %w", scanErr)
	}
	mu.Lock()
	defer mu.Unlock()
	return results, nil
}

// ConnectFirst scans and connects to the first GoCube found, or to the one
// whose ID matches id when id is not empty.
func (c *Client) ConnectFirst(ctx context.Context, id string, timeout time.Duration) error {
	results, err := c.Scan(ctx, timeout)
	if err != nil {
		return err
	}
	for _, r := range results {
		if id == "" || r.ID() == id {
			return c.Connect(r)
		}
	}
	return ErrDeviceNotFound
}

// Connect connects to a scanned device and subscribes to notifications.
func (c *Client) Connect(result ScanResult) error {
	if c.IsConnected() {
		return ErrAlreadyConnected
	}

	device, err := c.adapter.Connect(result.Address, bluetooth.ConnectionParams{})
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}

	rx, err := c.subscribe(device)
	if err != nil {
		_ = device.Disconnect()
		return err
	}

	c.mu.Lock()
	c.device = device
	c.rxChar = rx
	c.connected = true
	c.deviceName = result.Name
	c.mu.Unlock()

	c.log.WithField("name", result.Name).Info("connected")
	return c.SendCommand(protocol.CmdRequestBattery)
}

func (c *Client) subscribe(device bluetooth.Device) (bluetooth.DeviceCharacteristic, error) {
	var rx bluetooth.DeviceCharacteristic

	services, err := device.DiscoverServices([]bluetooth.UUID{serviceUUID})
	if err != nil {
		return rx, fmt.Errorf("discover services: %w", err)
	}
	if len(services) == 0 {
		return rx, ErrServiceNotFound
	}

	chars, err := services[0].DiscoverCharacteristics([]bluetooth.UUID{txCharUUID, rxCharUUID})
	if err != nil {
		return rx, fmt.Errorf("discover characteristics: %w", err)
	}

	var tx bluetooth.DeviceCharacteristic
	for _, ch := range chars {
		switch ch.UUID() {
		case txCharUUID:
			tx = ch
		case rxCharUUID:
			rx = ch
		}
	}
	if err := tx.EnableNotifications(c.handleNotification); err != nil {
		return rx, fmt.Errorf("enable notifications: %w", err)
	}
	return rx, nil
}

// Disconnect drops the connection. It is a no-op when not connected.
func (c *Client) Disconnect() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.connected {
		return nil
	}
	err := c.device.Disconnect()
	c.connected = false
	c.deviceName = ""
	c.battery = -1
	return err
}

// IsConnected returns true if connected to a device.
func (c *Client) IsConnected() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.connected
}

// DeviceName returns the connected device name.
func (c *Client) DeviceName() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.deviceName
}

// Battery returns the last reported battery level, or -1.
func (c *Client) Battery() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.battery
}

// SendCommand writes a command frame to the cube.
func (c *Client) SendCommand(cmd byte) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.connected {
		return ErrNotConnected
	}
	data := protocol.BuildCommand(cmd)
	if _, err := c.rxChar.WriteWithoutResponse(data); err != nil {
		_, err = c.rxChar.Write(data)
		return err
	}
	return nil
}

// ResetSolved tells the cube its current physical state is solved.
func (c *Client) ResetSolved() error {
	return c.SendCommand(protocol.CmdResetSolved)
}

func (c *Client) handleNotification(data []byte) {
	msg, err := protocol.ParseMessage(data)
	if err != nil {
		c.log.WithError(err).Debug("dropping malformed frame")
		return
	}
	c.log.WithFields(logrus.Fields{
		"type": protocol.MessageTypeName(msg.Type),
		"raw":  msg.Raw,
	}).Trace("message")

	c.mu.RLock()
	onTurns, onMessage := c.onTurns, c.onMessage
	c.mu.RUnlock()

	switch msg.Type {
	case protocol.MsgTypeBattery:
		if b, err := protocol.DecodeBattery(msg.Payload); err == nil {
			c.mu.Lock()
			c.battery = b.Level
			c.mu.Unlock()
		}
	case protocol.MsgTypeRotation:
		rots, err := protocol.DecodeRotation(msg.Payload)
		if err != nil {
			c.log.WithError(err).Warn("bad rotation payload")
			break
		}
		if turns := protocol.RotationTurns(rots); len(turns) > 0 && onTurns != nil {
			onTurns(turns)
		}
	}

	if onMessage != nil {
		onMessage(msg)
	}
}
