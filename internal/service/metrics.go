package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	storiesCreatedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "storyteller_stories_created_total",
		Help: "Stories created, by scenario key.",
	}, []string{"scenario"})

	storyTurnsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "storyteller_story_turns_total",
		Help: "Completed story turns, by action type.",
	}, []string{"action_type"})

	chatMessagesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storyteller_chat_messages_total",
		Help: "Completed chat exchanges.",
	})
)
