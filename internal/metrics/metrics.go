package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	Commands = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "hackagent_commands_total", Help: "Slash commands handled, by command name."},
		[]string{"command"},
	)
	Notifications = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "hackagent_notifications_total", Help: "Outbound notifications, by event and outcome."},
		[]string{"event", "status"},
	)
)

func Register() {
	prometheus.MustRegister(Commands, Notifications)
}
