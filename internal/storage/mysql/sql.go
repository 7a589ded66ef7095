package mysql

const hotelColumns = "id, name, address, city, tax_id, tax_verification_digit, room_count_declared, status, created_at, updated_at"

const insertHotelSQL = `
INSERT INTO hotels
  (name, address, city, tax_id, tax_verification_digit, room_count_declared, status, created_at, updated_at)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?)
`

// Full replacement of the mutable columns; uniqueness of name/tax_id is enforced by the indexes.
const updateHotelSQL = `
UPDATE hotels SET
  name                   = ?,
  address                = ?,
  city                   = ?,
  tax_id                 = ?,
  tax_verification_digit = ?,
  room_count_declared    = ?,
  status                 = ?,
  updated_at             = ?
WHERE id = ?
`

const getHotelSQL = `SELECT ` + hotelColumns + ` FROM hotels WHERE id = ?`

const listHotelsSQL = `SELECT ` + hotelColumns + ` FROM hotels`

const softDeleteHotelSQL = `UPDATE hotels SET status = 'DELETED', updated_at = ? WHERE id = ?`

const softDeleteHotelRoomsSQL = `
UPDATE rooms SET status = 'DELETED', updated_at = ?
WHERE hotel_id = ? AND status <> 'DELETED'
`

// -----------------------------------------------------------------------------
// ROOMS
// -----------------------------------------------------------------------------

const roomColumns = "r.id, r.hotel_id, r.quantity, r.room_type, r.accommodation, r.status, r.created_at, r.updated_at"

// hotel side of the rooms list join; LEFT JOIN keeps the room even if the reference is broken
const joinedHotelColumns = "h.id, h.name, h.address, h.city, h.tax_id, h.tax_verification_digit, h.room_count_declared, h.status, h.created_at, h.updated_at"

const insertRoomSQL = `
INSERT INTO rooms
  (hotel_id, quantity, room_type, accommodation, status, created_at, updated_at)
VALUES
  (?, ?, ?, ?, ?, ?, ?)
`

const updateRoomSQL = `
UPDATE rooms SET
  hotel_id      = ?,
  quantity      = ?,
  room_type     = ?,
  accommodation = ?,
  status        = ?,
  updated_at    = ?
WHERE id = ?
`

const getRoomSQL = `SELECT ` + roomColumns + ` FROM rooms r WHERE r.id = ?`

// No status filter: deleted rooms are part of the total.
const sumRoomQuantitySQL = `SELECT COALESCE(SUM(quantity), 0) FROM rooms WHERE hotel_id = ?`
