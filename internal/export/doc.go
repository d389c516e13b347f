// Package export сериализует магазин в два внешних формата.
//
// Record (JSON) содержит весь агрегат: склады с товарами и сотрудниками, покупателей
// и заказы (заказ ссылается на покупателя и товар только по имени).
// Markup (XML) содержит только склады и товары. Сотрудники, покупатели и заказы в нём
// отсутствуют намеренно, форматы не выравниваются друг под друга.
//
// Оба кодировщика — чистые функции текущего состояния *domain.Store.
package export
