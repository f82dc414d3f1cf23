package services

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// cacheEntry representa uma entrada no cache
type cacheEntry struct {
	key        string
	value      interface{}
	expiration time.Time
}

// LRUCache implementa um cache LRU (Least Recently Used) thread-safe com TTL
type LRUCache struct {
	capacity int
	clock    clockwork.Clock
	mu       sync.Mutex
	cache    map[string]*list.Element
	lruList  *list.List
	onEvict  func(key string, value interface{})
}

// NewLRUCache cria um novo cache LRU com a capacidade especificada
func NewLRUCache(capacity int, clock clockwork.Clock) *LRUCache {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &LRUCache{
		capacity: capacity,
		clock:    clock,
		cache:    make(map[string]*list.Element),
		lruList:  list.New(),
	}
}

// OnEvict registra uma função chamada quando uma entrada sai do cache
// por expiração ou por falta de espaço (não por Delete)
func (c *LRUCache) OnEvict(fn func(key string, value interface{})) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onEvict = fn
}

// Get recupera um valor do cache
func (c *LRUCache) Get(key string) interface{} {
	c.mu.Lock()
	defer c.mu.Unlock()

	if element, found := c.cache[key]; found {
		entry := element.Value.(*cacheEntry)

		if c.clock.Now().After(entry.expiration) {
			c.evict(element)
			return nil
		}

		c.lruList.MoveToBack(element)
		return entry.value
	}

	return nil
}

// Touch renova o TTL de uma entrada existente; retorna false se ela não existe ou expirou
func (c *LRUCache) Touch(key string, ttl time.Duration) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	element, found := c.cache[key]
	if !found {
		return false
	}
	entry := element.Value.(*cacheEntry)
	now := c.clock.Now()
	if now.After(entry.expiration) {
		c.evict(element)
		return false
	}
	entry.expiration = now.Add(ttl)
	c.lruList.MoveToBack(element)
	return true
}

// Set adiciona ou atualiza um valor no cache
func (c *LRUCache) Set(key string, value interface{}, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	expiration := c.clock.Now().Add(ttl)

	if element, found := c.cache[key]; found {
		c.lruList.MoveToBack(element)
		entry := element.Value.(*cacheEntry)
		entry.value = value
		entry.expiration = expiration
		return
	}

	// Se o cache está cheio, remover o item menos recentemente usado
	if c.lruList.Len() >= c.capacity {
		if oldest := c.lruList.Front(); oldest != nil {
			c.evict(oldest)
		}
	}

	element := c.lruList.PushBack(&cacheEntry{
		key:        key,
		value:      value,
		expiration: expiration,
	})
	c.cache[key] = element
}

// Delete remove um item do cache
func (c *LRUCache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if element, found := c.cache[key]; found {
		c.removeElement(element)
	}
}

// Size retorna o número de itens no cache
func (c *LRUCache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.lruList.Len()
}

// CleanupExpired remove todos os itens expirados do cache
func (c *LRUCache) CleanupExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock.Now()
	removed := 0

	var next *list.Element
	for element := c.lruList.Front(); element != nil; element = next {
		next = element.Next()
		entry := element.Value.(*cacheEntry)

		if now.After(entry.expiration) {
			c.evict(element)
			removed++
		}
	}

	return removed
}

// StartCleanupRoutine inicia uma rotina de limpeza periódica que termina com o ctx
func (c *LRUCache) StartCleanupRoutine(ctx context.Context, interval time.Duration, onCleanup func(removed int)) {
	ticker := c.clock.NewTicker(interval)

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.Chan():
				if removed := c.CleanupExpired(); removed > 0 && onCleanup != nil {
					onCleanup(removed)
				}
			}
		}
	}()
}

// evict remove o elemento e avisa o callback (deve ser chamado com lock)
func (c *LRUCache) evict(element *list.Element) {
	entry := element.Value.(*cacheEntry)
	c.removeElement(element)
	if c.onEvict != nil {
		c.onEvict(entry.key, entry.value)
	}
}

// removeElement remove um elemento da lista e do mapa (deve ser chamado com lock)
func (c *LRUCache) removeElement(element *list.Element) {
	c.lruList.Remove(element)
	entry := element.Value.(*cacheEntry)
	delete(c.cache, entry.key)
}
