package mpris

import (
	"context"

	"github.com/godbus/dbus/v5"
)

const (
	methodListNames   = "org.freedesktop.DBus.ListNames"
	methodPropertyGet = "org.freedesktop.DBus.Properties.Get"
)

// sessionConn adapts *dbus.Conn to conn.
type sessionConn struct {
	conn *dbus.Conn
}

func (s *sessionConn) ListNames(ctx context.Context) ([]string, error) {
	var names []string
	if err := s.conn.BusObject().CallWithContext(ctx, methodListNames, 0).Store(&names); err != nil {
		return nil, err
	}
	return names, nil
}

func (s *sessionConn) GetProperty(ctx context.Context, dest, iface, prop string) (dbus.Variant, error) {
	var v dbus.Variant
	err := s.conn.Object(dest, objectPath).
		CallWithContext(ctx, methodPropertyGet, 0, iface, prop).
		Store(&v)
	return v, err
}

func (s *sessionConn) Close() error {
	return s.conn.Close()
}
