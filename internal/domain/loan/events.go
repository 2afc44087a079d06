package loan

import "time"

// 借阅生命周期事件的routing key
// 发布到topic交换机,供外部协作方订阅(逾期扫描器消费loan.created后
// 比较due_date与当前日期,再通过更新接口显式标记overdue)
const (
	EventLoanCreated  = "loan.created"
	EventLoanReturned = "loan.returned"
	EventLoanOverdue  = "loan.overdue"
)

// Event 借阅事件载荷
type Event struct {
	LoanID     string     `json:"loan_id"`
	UserID     string     `json:"user_id"`
	BookID     string     `json:"book_id"`
	Status     string     `json:"status"`
	DueDate    time.Time  `json:"due_date"`
	ReturnedAt *time.Time `json:"returned_at,omitempty"`
	OccurredAt time.Time  `json:"occurred_at"`
}

// NewEvent 从借阅实体构建事件载荷
func NewEvent(l *Loan) Event {
	return Event{
		LoanID:     l.ID,
		UserID:     l.UserID,
		BookID:     l.BookID,
		Status:     string(l.Status),
		DueDate:    l.DueDate,
		ReturnedAt: l.ReturnedDate,
		OccurredAt: time.Now(),
	}
}

// EventPublisher 事件发布接口(pkg/mq的Publisher实现)
// 发布失败只记录日志,绝不使借阅请求失败
type EventPublisher interface {
	Publish(routingKey string, event interface{}) error
}

// NopPublisher 空实现(MQ未启用时使用)
type NopPublisher struct{}

// Publish 丢弃事件
func (NopPublisher) Publish(string, interface{}) error { return nil }
