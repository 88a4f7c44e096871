package sqlinline

const QInsertSavedImage = `--sql 8b2475a4-a87e-4adf-a5d9-fcadabc3ca9b
insert into saved_images (id, user_id, image_url, prompt, theme_key)
values (gen_random_uuid(), $1, $2, $3, $4)
returning id, created_at;
`

const QSelectUserImages = `--sql 3941b193-988f-4c4e-b079-a2be324133fd
select id, user_id, image_url, prompt, theme_key, created_at
from saved_images
where user_id = $1
order by created_at desc
limit 200;
`

const QSelectSavedImage = `--sql 334b89cd-5523-4eef-b229-8876071cb228
select id, user_id, image_url, prompt, theme_key, created_at
from saved_images
where id = $1 and user_id = $2;
`
