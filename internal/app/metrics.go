package app

import "hotel_inventory/internal/adapters/observability"

func observeEntity(entity, action string) { observability.ObserveEntity(entity, action) }
