package scanner

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Decoder - внешняя подсистема сканирования QR-кодов. Камера и
// распознавание остаются черным ящиком: известен только жизненный цикл
// старт/стоп и обратный вызов с расшифрованным текстом.
type Decoder interface {
	Start(onDecode func(text string)) error
	Stop() error
}

// Gate гасит повторные срабатывания: после обработанной расшифровки
// следующая принимается только по истечении паузы. Без этого код,
// непрерывно стоящий перед камерой, отправлялся бы на сервер много раз.
type Gate struct {
	mu       sync.Mutex
	cooldown time.Duration
	ready    bool
	timer    *time.Timer
}

func NewGate(cooldown time.Duration) *Gate {
	return &Gate{
		cooldown: cooldown,
		ready:    true,
	}
}

// TryAcquire пытается занять ворота. Возвращает false, если пауза после
// предыдущей расшифровки еще не истекла.
func (g *Gate) TryAcquire() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.ready {
		return false
	}
	g.ready = false
	return true
}

// Release запускает отложенное открытие ворот через паузу. Таймер
// отменяемый: Stop снимает его при выключении сканера.
func (g *Gate) Release() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.timer != nil {
		g.timer.Stop()
	}
	g.timer = time.AfterFunc(g.cooldown, func() {
		g.mu.Lock()
		g.ready = true
		g.timer = nil
		g.mu.Unlock()
	})
}

// Stop отменяет отложенное открытие и возвращает ворота в исходное
// состояние
func (g *Gate) Stop() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.timer != nil {
		g.timer.Stop()
		g.timer = nil
	}
	g.ready = true
}

// Controller связывает декодер, ворота и обработку результата
type Controller struct {
	decoder Decoder
	gate    *Gate
	handle  func(text string)
	logger  *logrus.Logger

	mu      sync.Mutex
	running bool
}

func NewController(decoder Decoder, cooldown time.Duration, handle func(text string)) *Controller {
	return &Controller{
		decoder: decoder,
		gate:    NewGate(cooldown),
		handle:  handle,
		logger:  logrus.New(),
	}
}

// Start запускает сканер. Повторный запуск уже работающего сканера -
// безвредный no-op.
func (c *Controller) Start() error {
	c.mu.Lock()
	if c.running {
		c.mu.Unlock()
		return nil
	}
	c.running = true
	c.mu.Unlock()

	if err := c.decoder.Start(c.onDecode); err != nil {
		c.mu.Lock()
		c.running = false
		c.mu.Unlock()
		c.logger.WithError(err).Error("Failed to start scanner")
		return err
	}

	c.logger.Info("Scanner started")
	return nil
}

// Stop останавливает сканер и снимает отложенное открытие ворот
func (c *Controller) Stop() error {
	c.mu.Lock()
	if !c.running {
		c.mu.Unlock()
		return nil
	}
	c.running = false
	c.mu.Unlock()

	err := c.decoder.Stop()
	c.gate.Stop()

	if err != nil {
		c.logger.WithError(err).Error("Failed to stop scanner")
		return err
	}

	c.logger.Info("Scanner stopped")
	return nil
}

// Running сообщает, работает ли сканер
func (c *Controller) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}

func (c *Controller) onDecode(text string) {
	if !c.gate.TryAcquire() {
		return
	}

	c.handle(text)
	c.gate.Release()
}
