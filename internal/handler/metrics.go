package handler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var tokenVerificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "storyteller_token_verifications_total",
	Help: "Access token verifications, by result.",
}, []string{"result"})
