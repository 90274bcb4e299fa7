package notify

import (
	"context"
	"fmt"

	"github.com/akyairhashvil/tock/internal/models"
	"github.com/godbus/dbus/v5"
)

const (
	busName      = "org.freedesktop.Notifications"
	objectPath   = dbus.ObjectPath("/org/freedesktop/Notifications")
	notifyMethod = busName + ".Notify"
	closeMethod  = busName + ".CloseNotification"
)

// urgency levels from the freedesktop notification spec.
const (
	urgencyNormal   byte = 1
	urgencyCritical byte = 2
)

// DBusNotifier talks to the freedesktop notification daemon on the session
// bus. The connection is opened on first use so a daemon that starts late is
// picked up on the next call. Not safe for concurrent use.
type DBusNotifier struct {
	connect func() (*dbus.Conn, error)
	conn    *dbus.Conn
}

func NewDBusNotifier() *DBusNotifier {
	return &DBusNotifier{connect: func() (*dbus.Conn, error) { return dbus.ConnectSessionBus() }}
}

func (d *DBusNotifier) object() (dbus.BusObject, error) {
	if d.conn == nil {
		conn, err := d.connect()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		d.conn = conn
	}
	return d.conn.Object(busName, objectPath), nil
}

func (d *DBusNotifier) Show(ctx context.Context, n models.Notification) (models.NotificationHandle, error) {
	obj, err := d.object()
	if err != nil {
		return models.NotificationHandle{}, err
	}
	call := obj.CallWithContext(ctx, notifyMethod, 0, notifyArgs(n)...)
	if call.Err != nil {
		d.reset()
		return models.NotificationHandle{}, fmt.Errorf("%w: %v", ErrUnavailable, call.Err)
	}
	var id uint32
	if err := call.Store(&id); err != nil {
		return models.NotificationHandle{}, fmt.Errorf("decode notification id: %w", err)
	}
	return models.NotificationHandle{ID: id}, nil
}

func (d *DBusNotifier) Dismiss(ctx context.Context, h models.NotificationHandle) error {
	if !h.Valid() {
		return ErrInvalidHandle
	}
	obj, err := d.object()
	if err != nil {
		return err
	}
	if err := obj.CallWithContext(ctx, closeMethod, 0, h.ID).Err; err != nil {
		return fmt.Errorf("close notification %d: %w", h.ID, err)
	}
	return nil
}

// Close releases the bus connection.
func (d *DBusNotifier) Close() error {
	if d.conn == nil {
		return nil
	}
	err := d.conn.Close()
	d.conn = nil
	return err
}

func (d *DBusNotifier) reset() {
	if d.conn != nil {
		_ = d.conn.Close()
		d.conn = nil
	}
}

// notifyArgs builds the argument list of org.freedesktop.Notifications.Notify:
// app_name, replaces_id, app_icon, summary, body, actions, hints, expire_timeout.
func notifyArgs(n models.Notification) []interface{} {
	actions := make([]string, 0, len(n.Actions)*2)
	for _, a := range n.Actions {
		actions = append(actions, a.Key, a.Label)
	}
	urgency := urgencyNormal
	if n.Timeout == models.TimeoutNever {
		urgency = urgencyCritical
	}
	hints := map[string]dbus.Variant{
		"urgency": dbus.MakeVariant(urgency),
	}
	return []interface{}{
		n.AppName,
		uint32(0),
		"",
		n.Summary,
		n.Body,
		actions,
		hints,
		int32(n.Timeout),
	}
}
