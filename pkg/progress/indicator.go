package progress

import "fmt"

// Simple provides a basic single-line progress bar for sequential tasks.
type Simple struct {
	total   int
	current int
	label   string
	width   int
}

// NewSimple creates a simple progress bar.
func NewSimple(total int, label string) *Simple {
	return &Simple{
		total: total,
		label: label,
		width: 40,
	}
}

// Update updates the progress bar.
func (sp *Simple) Update(current int) {
	sp.current = current
	sp.display()
}

// display shows the current progress bar
func (sp *Simple) display() {
	percentage := float64(sp.current) / float64(sp.total) * 100
	filled := int(float64(sp.width) * float64(sp.current) / float64(sp.total))

	bar := ""
	for i := 0; i < sp.width; i++ {
		if i < filled {
			bar += "█"
		} else {
			bar += "░"
		}
	}

	fmt.Printf("\r%s [%s] %d/%d (%.1f%%)",
		sp.label, bar, sp.current, sp.total, percentage)
}

// Finish completes the progress bar.
func (sp *Simple) Finish() {
	sp.Update(sp.total)
	fmt.Println(" DONE")
}
