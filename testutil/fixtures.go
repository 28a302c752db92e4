package testutil

// Canned Arca API bodies, shaped like the production service.
const (
	TestToken    = "T1"
	TestUserID   = "U1"
	TestUsername = "a@b.com"
	TestPassword = "pw"

	LoginBody = `{"auth_token":"T1","uuid":"U1","password_update_required":false}`

	LoginFailedBody = `{"error":"Invalid email or password"}`

	AnnouncementBody = `{"announcement":{"id":3,"body":"Closed on the 24th"}}`

	UserBody = `{"user":{"uuid":"U1","unread_invitations":2,"badges":[{"id":1},{"id":2},{"id":3}]}}`

	PushNotificationsBody = `{"push_notifications":[
		{"id":1,"read?":false},
		{"id":2,"read?":true},
		{"id":3,"read?":false}
	]}`

	FriendRequestsBody = `{"friend_requests":[{"id":11}]}`

	FriendshipsBody = `{"users":[{"uuid":"F1"},{"uuid":"F2"}]}`

	BookingsBody = `{"ss_participations":[{"id":100},{"id":101},{"id":102},{"id":103}]}`

	FeedBody = `{"activities":[{"title":"Anna booked Spinning"},{"title":"Bo booked Yoga"}]}`

	GymsBody = `{"gyms":[{"id":7,"name":"Arca Nordvest"},{"id":9,"name":"Arca Valby"}]}`

	SettingsBody = `{"settings":{"language":"da","newsletter":true}}`

	PayDebtBody = `{"debt":0,"currency":"DKK"}`

	AuthorizeCardBody = `{"authorized":true}`

	// EventsBody holds one bookable, oversubscribed event and two that are not bookable
	EventsBody = `{"ss_events":[
		{
			"id": 42,
			"title": "Spinning",
			"instructor": "Mette",
			"start_date_time": "2024-12-25T10:00:00.000+01:00",
			"end_date_time": "2024-12-25T10:45:00.000+01:00",
			"capacity": 10,
			"free_space": -2,
			"can_book": true,
			"is_canceled": false,
			"description": "Christmas ride, bring water"
		},
		{
			"id": 43,
			"title": "Yoga",
			"instructor": "Lars",
			"start_date_time": "2024-12-25T12:00:00.000+01:00",
			"end_date_time": "2024-12-25T13:00:00.000+01:00",
			"capacity": 15,
			"free_space": 15,
			"can_book": true,
			"is_canceled": true,
			"description": "Canceled"
		},
		{
			"id": 44,
			"title": "Crossfit",
			"instructor": "Sofie",
			"start_date_time": "2024-12-25T17:00:00.000+01:00",
			"end_date_time": "2024-12-25T18:00:00.000+01:00",
			"capacity": 12,
			"free_space": 3,
			"can_book": false,
			"is_canceled": false,
			"description": "Booking not open yet"
		}
	]}`

	EmptyEventsBody = `{"ss_events":[]}`

	BookedBody = `{"participation":{"id":555,"event_id":42}}`
)
