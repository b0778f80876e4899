/*	Package seq provides a lazy, composable sequence abstraction.



	Summary

	A Seq wraps a single one-shot cursor and lets the consumer chain
	functional transformations over it (map, filter, concatenation, zipping,
	reduction, sorting) without materializing intermediate containers.
	Every transformation returns a new Seq whose cursor is an adapter layered
	on top of the previous one; nothing is evaluated until the consumer pulls.
	An Iterator represent multiple data that can be 0 and infinite.

	Iterator define a separate object that encapsulates accessing and traversing an aggregate object.
	Clients use an iterator to access and traverse an aggregate without knowing its representation (data structures).
	Interface design inspirited by https://golang.org/pkg/encoding/json/#Decoder

	A Seq is itself an Iterator, so sequences compose with every constructor
	and combinator of this package, and with anything else that consumes the
	pull contract.



	Single-pass

	A Seq owns exactly one cursor for its whole lifetime and can be drained at
	most once. Once exhausted it stays exhausted; re-draining a spent Seq is
	defined behavior and yields nothing. Eager operations (Sorted, SortFunc,
	Reverse, Join) fully consume their receiver and hand back a fresh Seq or
	the final result.



	Resources

	https://en.wikipedia.org/wiki/Iterator_pattern

*/
package seq
