package repositories

type Repos struct {
	Request      RequestRepo
	Notification NotificationRepo
}

func New() *Repos {
	return &Repos{
		Request:      &DBRequestRepo{},
		Notification: &DBNotificationRepo{},
	}
}
