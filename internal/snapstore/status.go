package snapstore

import (
	"fmt"

	"github.com/pulseboard/pulseboard/schema"
)

// PrintSnapshotStatus prints snapshot store status information.
func PrintSnapshotStatus(status schema.SnapshotStatus) {
	fmt.Printf("Snapshot Backend: %s\n", status.Backend)
	fmt.Printf("Connected: %t\n", status.Connected)
	if !status.Connected {
		return
	}
	fmt.Printf("Total Entries: %d\n", status.TotalEntries)
	if status.TotalEntries > 0 {
		fmt.Printf("Last Entry: %s\n", status.LastEntryTime.Format("2006-01-02 15:04:05"))
		fmt.Printf("Oldest Entry: %s\n", status.OldestEntryTime.Format("2006-01-02 15:04:05"))
	}
	fmt.Printf("Table Size: %d bytes\n", status.TableSizeBytes)
}
