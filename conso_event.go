package conso

import (
	"sync"
)

// RecordCallback receives dispatched records. Callbacks run on a dedicated
// goroutine and must not retain the record.
type RecordCallback func(rec *LogRecord)

type callbackEntry struct {
	callback RecordCallback
	id       uint64
}

// eventProcessor delivers records to subscribed callbacks asynchronously so
// a slow subscriber cannot stall the logging path.
type eventProcessor struct {
	recordChan  chan *LogRecord
	callbacks   []callbackEntry
	callbacksMu sync.RWMutex
	nextID      uint64
	wg          sync.WaitGroup
	shutdown    chan struct{}
	once        sync.Once
}

func newEventProcessor() *eventProcessor {
	p := &eventProcessor{
		recordChan: make(chan *LogRecord, 1000),
		shutdown:   make(chan struct{}),
	}
	p.wg.Add(1)
	go p.run()
	return p
}

func (p *eventProcessor) run() {
	defer p.wg.Done()
	for {
		select {
		case rec := <-p.recordChan:
			p.deliver(rec)
		case <-p.shutdown:
			// Drain whatever is still queued before exiting.
			for {
				select {
				case rec := <-p.recordChan:
					p.deliver(rec)
				default:
					return
				}
			}
		}
	}
}

func (p *eventProcessor) deliver(rec *LogRecord) {
	p.callbacksMu.RLock()
	entries := append([]callbackEntry(nil), p.callbacks...)
	p.callbacksMu.RUnlock()
	for _, e := range entries {
		invokeCallback(e.callback, rec)
	}
}

// invokeCallback isolates a panicking subscriber from the processor loop.
func invokeCallback(cb RecordCallback, rec *LogRecord) {
	defer func() {
		_ = recover()
	}()
	cb(rec)
}

func (p *eventProcessor) emit(rec *LogRecord) {
	p.callbacksMu.RLock()
	subscribed := len(p.callbacks) > 0
	p.callbacksMu.RUnlock()
	if !subscribed {
		return
	}
	select {
	case p.recordChan <- rec:
	default:
		// Queue full: drop rather than block the logging path.
	}
}

func (p *eventProcessor) subscribe(cb RecordCallback) func() {
	p.callbacksMu.Lock()
	p.nextID++
	id := p.nextID
	p.callbacks = append(p.callbacks, callbackEntry{callback: cb, id: id})
	p.callbacksMu.Unlock()

	return func() {
		p.callbacksMu.Lock()
		defer p.callbacksMu.Unlock()
		kept := p.callbacks[:0]
		for _, e := range p.callbacks {
			if e.id != id {
				kept = append(kept, e)
			}
		}
		p.callbacks = kept
	}
}

func (p *eventProcessor) close() {
	p.once.Do(func() {
		close(p.shutdown)
		p.wg.Wait()
	})
}

// OnRecord registers cb for every record this logger dispatches. The
// returned function unsubscribes it.
func (c *Conso) OnRecord(cb RecordCallback) func() {
	return c.events.subscribe(cb)
}

// Close stops asynchronous callback delivery after draining queued records.
// Loggers that never subscribed a callback do not need to call it.
func (c *Conso) Close() {
	c.events.close()
}
