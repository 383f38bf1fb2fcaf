// BLE Debug - connects to a GoCube and logs every frame it sends along with
// the turns decoded from it.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	rubikscube "github.com/h4rr9/rubiks-cube"
	"github.com/h4rr9/rubiks-cube/internal/ble"
	"github.com/h4rr9/rubiks-cube/internal/protocol"
)

func main() {
	timeout := flag.Duration("timeout", 10*time.Second, "scan duration")
	device := flag.String("device", "", "device ID to connect to (default: first found)")
	flag.Parse()

	log := logrus.New()
	log.SetLevel(logrus.TraceLevel)

	fmt.Println("BLE Debug for GoCube")
	fmt.Println("====================")
	fmt.Println()
	fmt.Println("Rotate the cube to wake it up. Press Ctrl+C to stop.")
	fmt.Println()

	client, err := ble.NewClient(log)
	if err != nil {
		log.WithError(err).Fatal("bluetooth unavailable")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cube := rubikscube.New()
	client.OnTurns(func(turns []rubikscube.Turn) {
		cube.Apply(turns...)
		log.WithFields(logrus.Fields{
			"turns":    rubikscube.FormatTurns(turns),
			"solvable": cube.IsSolvable(),
			"solved":   cube.IsSolved(),
		}).Info("turned")
	})
	client.OnMessage(func(msg *protocol.Message) {
		log.WithFields(logrus.Fields{
			"type":    protocol.MessageTypeName(msg.Type),
			"payload": fmt.Sprintf("% x", msg.Payload),
		}).Debug("frame")
	})

	if err := client.ConnectFirst(ctx, *device, *timeout); err != nil {
		log.WithError(err).Fatal("connect failed")
	}
	defer client.Disconnect()

	for _, cmd := range []byte{protocol.CmdRequestCubeType, protocol.CmdRequestBattery} {
		if err := client.SendCommand(cmd); err != nil {
			log.WithError(err).Warn("command failed")
		}
	}

	<-ctx.Done()
	fmt.Println()
	fmt.Print(cube.String())
}
