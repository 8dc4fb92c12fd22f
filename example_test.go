package mvckit_test

import (
	"context"
	"fmt"

	"github.com/dmitrymomot/mvckit"
)

type greetingCommand struct {
	mvckit.Notifier
}

func (c *greetingCommand) Execute(n *mvckit.Notification) {
	name, _ := n.Body().(string)
	_ = c.SendNotification("greeting.ready", mvckit.WithBody("Hello, "+name+"!"))
}

type consoleMediator struct {
	mvckit.Notifier
}

func (m *consoleMediator) Name() string { return "console" }

func (m *consoleMediator) NotificationInterests() []string {
	return []string{"greeting.ready"}
}

func (m *consoleMediator) HandleNotification(n *mvckit.Notification) {
	fmt.Println(n.Body())
}

func (m *consoleMediator) OnRegister() {}
func (m *consoleMediator) OnRemove()   {}

func Example() {
	app := mvckit.MustNew()

	app.RegisterCommand("greet", func() mvckit.Command {
		return &greetingCommand{}
	})
	app.RegisterMediator(&consoleMediator{})

	app.SendNotification("greet", mvckit.WithBody("World"))
	// Output: Hello, World!
}

type sessionProxy struct {
	mvckit.Notifier
	users []string
}

func (p *sessionProxy) Name() string { return "sessions" }
func (p *sessionProxy) OnRegister() {}
func (p *sessionProxy) OnRemove()   {}

func (p *sessionProxy) Add(user string) {
	p.users = append(p.users, user)
	_ = p.SendNotification("session.added", mvckit.WithBody(user))
}

func ExampleNotifier() {
	app := mvckit.MustNew()
	app.View().RegisterObserver("session.added", mvckit.NewObserver(func(n *mvckit.Notification) {
		fmt.Println("added:", n.Body())
	}, mvckit.NewHandle()))

	app.RegisterProxy(&sessionProxy{})
	p, _ := app.Proxy("sessions")
	p.(*sessionProxy).Add("alice")
	// Output: added: alice
}

func ExampleSequence() {
	app := mvckit.MustNew()

	step := func(msg string) mvckit.CommandFactory {
		return func() mvckit.Command {
			return mvckit.CommandFunc(func(*mvckit.Notification) {
				fmt.Println(msg)
			})
		}
	}
	app.RegisterCommand("app.start", mvckit.Sequence(
		step("load config"),
		step("open store"),
		step("start ui"),
	))

	app.SendNotification("app.start")
	// Output:
	// load config
	// open store
	// start ui
}

func ExampleApp_Stream() {
	app := mvckit.MustNew()
	ctx, cancel := context.WithCancel(context.Background())

	ch := app.Stream(ctx, "metric.sample")
	app.SendNotification("metric.sample", mvckit.WithBody(1))
	app.SendNotification("metric.sample", mvckit.WithBody(2))
	cancel()

	for n := range ch {
		fmt.Println(n.Name(), n.Body())
	}
	// Output:
	// metric.sample 1
	// metric.sample 2
}

func ExampleNewNotification() {
	n := mvckit.NewNotification("user.created",
		mvckit.WithBody("u-42"),
		mvckit.WithType("audit"),
	)
	fmt.Println(n.Name(), n.Body(), n.Type())
	// Output: user.created u-42 audit
}
