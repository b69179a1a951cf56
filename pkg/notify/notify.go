// Package notify shows brightness changes through the desktop
// notification daemon.
package notify

import (
	"fmt"
	"math"

	"github.com/godbus/dbus/v5"
)

const (
	appName     = "xmon"
	icon        = "display-brightness-symbolic"
	timeoutMsec = int32(1500)
)

// Hints builds the notification hints for a brightness level in [0,1]. The
// synchronous hint lets daemons replace the previous bubble instead of
// stacking a new one per key press.
func Hints(brightness float64) map[string]dbus.Variant {
	percent := int32(math.Round(math.Min(1, math.Max(0, brightness)) * 100))
	return map[string]dbus.Variant{
		"value":                           dbus.MakeVariant(percent),
		"x-canonical-private-synchronous": dbus.MakeVariant("xmon-brightness"),
		"urgency":                         dbus.MakeVariant(byte(0)),
	}
}

// Brightness sends one notification for output at the given level.
func Brightness(output string, brightness float64) error {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return fmt.Errorf("failed to connect to session bus: %w", err)
	}
	defer conn.Close()

	obj := conn.Object("org.freedesktop.Notifications", "/org/freedesktop/Notifications")

	call := obj.Call("org.freedesktop.Notifications.Notify", 0,
		appName,
		uint32(0),
		icon,
		"Brightness",
		fmt.Sprintf("%s: %d%%", output, int(math.Round(brightness*100))),
		[]string{},
		Hints(brightness),
		timeoutMsec,
	)
	if call.Err != nil {
		return fmt.Errorf("failed to send notification: %w", call.Err)
	}
	return nil
}
